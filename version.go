package lam

// Version is the interpreter version reported by the CLI.
const Version = "0.3.0"

// BuildDate is stamped by the release script; "dev" for local builds.
var BuildDate = "dev"
