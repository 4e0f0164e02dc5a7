// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the bunutan API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(s, cfg)

# Endpoints

Health:

	GET /health

Roster (locked once the draw exists):

	POST   /participants      - Add participant
	GET    /participants      - List in insertion order
	DELETE /participants/{id} - Remove participant
	POST   /participants/bulk - Import newline or comma separated names

Settings:

	POST /settings/gift-rules - Set gift value rules
	GET  /settings            - Rules and draw state

Draw:

	POST /draw - Generate the one and only draw
	GET  /draw - Assignments with reveal links

Reveal (participant, token only):

	GET  /reveal?token=...
	GET  /reveal/{token}
	GET  /reveal/          - Empty token, same 404 as an unknown one
	POST /reveal

Admin:

	GET  /stats                - Completion statistics
	GET  /export[?format=csv]  - Full snapshot download
	POST /reset                - Delete everything

Every route except /health and / is wrapped with middleware.WithLogging.
The logged path is the route pattern, so reveal tokens never reach logs.
*/
package router
