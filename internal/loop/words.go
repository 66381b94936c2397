package loop

// words is the fixed pool meteors draw their text from.
var words = []string{
	"system", "hacker", "protocol", "circuit", "binary",
	"cyber", "neon", "matrix", "linux", "python", "script",
	"server", "proxy", "firewall", "encryption", "node", "data",
	"java", "object", "class", "void", "public", "static",
}
