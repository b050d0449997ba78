// Package static embeds the shell's client assets.
package static

import "embed"

// Assets holds the stylesheet and any future client files served
// under /static/.
//
//go:embed style.css
var Assets embed.FS
