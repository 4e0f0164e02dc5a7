// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the bunutan API server.

Bunutan is a secret santa (monito-monita) organizer. An admin builds a
roster, generates a single draw in which nobody gets themselves, and hands
each participant a private reveal link. Opening the link shows who they are
buying for and the group's gift value rules.

# Starting the Server

With no configuration the server stores everything in a local SQLite file:

	go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

A .env file in the working directory is loaded first. Values already set in
the environment win over it, and CLI flags win over both.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: file:bunutan.db for sqlite)
  - BASE_URL (-base-url): Prefix for reveal links
  - LOG_LEVEL (-log-level): debug, info, warn or error

# Architecture

  - handlers: HTTP request handlers (participants, settings, draw, reveal, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON and error helpers
  - store: SQL persistence and the draw/reveal latches
  - draw: Derangement search and assignment building
  - reveal: Token lookup and the per-token reveal latch
  - stats: Completion statistics
  - models: Request/response and domain types, error kinds
  - auth: ID and reveal token generation
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
