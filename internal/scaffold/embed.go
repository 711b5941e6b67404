package scaffold

import "embed"

//go:embed scaffolds
var scaffoldFS embed.FS

const templatesDir = "scaffolds/express"
