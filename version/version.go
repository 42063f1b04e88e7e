package version

const (
	// NanoRPCSemVer is used as the fallback version of nanorpc
	// when not using git describe. It uses semantic versioning format.
	NanoRPCSemVer = "0.3.0-dev"

	// RPCProtocol is the node RPC dialect spoken by the client: one JSON
	// object per request, selected by its "action" member.
	RPCProtocol = "action-json"
)

// GitCommitHash uses git rev-parse HEAD to find commit hash which is helpful
// for the engineering team when working with the nanorpc binary. Set it with
// -ldflags "-X github.com/nanorpc/nanorpc/version.GitCommitHash=...".
var GitCommitHash = ""
