package envvar

const (
	// VoxlingoEnv is the environment variable used to determine the environment
	VoxlingoEnv = "VOXLINGO_ENV"

	// VoxlingoServerHTTPPort is the environment variable used to determine the HTTP port
	VoxlingoServerHTTPPort = "VOXLINGO_SERVER_HTTP_PORT"

	// VoxlingoServerGRPCPort is the environment variable used to determine the gRPC port
	VoxlingoServerGRPCPort = "VOXLINGO_SERVER_GRPC_PORT"

	// VoxlingoDataPath is the environment variable used to determine the data directory
	VoxlingoDataPath = "VOXLINGO_DATA_PATH"

	// ElevenLabsAPIKey is the environment variable holding the ElevenLabs API key
	ElevenLabsAPIKey = "ELEVEN_LABS_API_KEY"
)
