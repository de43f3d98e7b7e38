// Package dagconfig defines the network parameters the wallet needs to tell
// the Kaspa networks apart. An offline wallet only cares about the network's
// name and its address prefix.
package dagconfig

// Params defines a Kaspa network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Prefix is the prefix of textual addresses on this network.
	Prefix string
}

// MainnetParams defines the network parameters for the main Kaspa network.
var MainnetParams = Params{
	Name:   "kaspa-mainnet",
	Prefix: "kaspa",
}

// TestnetParams defines the network parameters for the test Kaspa network.
var TestnetParams = Params{
	Name:   "kaspa-testnet",
	Prefix: "kaspatest",
}

// SimnetParams defines the network parameters for the simulation test Kaspa
// network.
var SimnetParams = Params{
	Name:   "kaspa-simnet",
	Prefix: "kaspasim",
}

// DevnetParams defines the network parameters for the development Kaspa
// network.
var DevnetParams = Params{
	Name:   "kaspa-devnet",
	Prefix: "kaspadev",
}

// AllParams lists the parameters of every known network, mainnet first.
var AllParams = []*Params{&MainnetParams, &TestnetParams, &SimnetParams, &DevnetParams}
