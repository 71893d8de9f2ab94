// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package web embeds the static assets served at /static/.
package web

import "embed"

// StaticFS holds the stylesheet and the small script that drives the views
// through the JSON API.
//
//go:embed all:static
var StaticFS embed.FS
