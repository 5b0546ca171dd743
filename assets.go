// Package quizforge provides embedded assets for production builds.
package quizforge

import "embed"

// Embedded templates for production builds.
// In dev mode (IsDev=true), templates are loaded from disk for hot reloading.
// In production mode (IsDev=false), templates are served from this embedded filesystem.

//go:embed all:frontend/templates
var TemplateFS embed.FS
