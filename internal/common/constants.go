package common

const (
	DefaultConfigPath = "./configs/config.yml"
	DefaultLogLevel   = "info"

	DefaultBaseURL = "https://api.dexscreener.com"

	// Wrapped SOL mint, the token the probe checks by default.
	DefaultTokenSymbol  = "SOL"
	DefaultTokenAddress = "So11111111111111111111111111111111111111112"
)

var DefaultSearchQueries = []string{"solana", "raydium"}
