// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package supervisor provides process supervision for CineMatch using suture v4.

The tree separates background storage maintenance from request serving:

	RootSupervisor ("cinematch")
	├── StorageSupervisor ("storage-layer")
	│   └── StoreGCService (when the store is on disk)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events
(restarts, panics, backoff) are logged through sutureslog, backed by the
zerolog bridge in internal/logging.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddStorageService(services.NewStoreGCService(store, cfg.Storage.GCInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("supervisor stopped with error")
	}
*/
package supervisor
