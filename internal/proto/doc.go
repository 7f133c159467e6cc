// Package proto holds the gRPC bindings for TrackerService, generated from
// proto/tracker.proto. The generated sources are not committed; regenerate
// them from the repository root with:
//
//	protoc --go_out=. --go_opt=module=github.com/dmitrijs2005/tracker \
//	       --go-grpc_out=. --go-grpc_opt=module=github.com/dmitrijs2005/tracker \
//	       proto/tracker.proto
package proto
