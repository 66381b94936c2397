package main

import (
	"testing"

	"github.com/charmbracelet/ssh"
)

func TestWindowSizeFollowsChanges(t *testing.T) {
	size := newWindowSize(ssh.Window{Width: 80, Height: 24})
	if w, h, err := size.get(); w != 80 || h != 24 || err != nil {
		t.Fatalf("get() = %d, %d, %v, want 80, 24, nil", w, h, err)
	}

	changes := make(chan ssh.Window, 3)
	changes <- ssh.Window{Width: 100, Height: 30}
	changes <- ssh.Window{Width: 132, Height: 43}
	close(changes)
	size.follow(changes)

	if w, h, _ := size.get(); w != 132 || h != 43 {
		t.Fatalf("get() after resize = %d, %d, want 132, 43", w, h)
	}
}
