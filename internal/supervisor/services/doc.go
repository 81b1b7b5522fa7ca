// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package services provides suture.Service wrappers for CineMatch components.

Each wrapper translates a component lifecycle into suture's context-aware
Serve method and implements fmt.Stringer so supervisor events name it.

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - http.ErrServerClosed is not treated as a failure

Store GC (StoreGCService):
  - Runs rating store value log GC on a fixed interval
  - Records each pass in rating_store_gc_runs_total
  - A failed pass is logged and retried on the next tick
*/
package services
