package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/kaspawallet/config"
	"github.com/pkg/errors"
)

const (
	createSubCmd              = "create"
	showAddressSubCmd         = "show-address"
	sendSubCmd                = "send"
	signSubCmd                = "sign"
	estimateFeeSubCmd         = "estimate-fee"
	validateAddressSubCmd     = "validate-address"
	dumpUnencryptedDataSubCmd = "dump-unencrypted-data"
)

type createConfig struct {
	KeysFile     string `long:"keys-file" short:"f" description:"Keys file location (default: ~/.kaspawallet/<network>/keys.json)"`
	Force        bool   `long:"force" short:"y" description:"Overwrite an existing keys file"`
	PasswordLess bool   `long:"password-less" description:"Create the keys file without password protection (not recommended)"`
	config.NetworkFlags
}

type showAddressConfig struct {
	KeysFile   string `long:"keys-file" short:"f" description:"Keys file location (default: ~/.kaspawallet/<network>/keys.json)"`
	PrivateKey string `long:"private-key" short:"k" description:"The private key of the wallet (encoded in hex); overrides the keys file"`
	config.NetworkFlags
}

type sendConfig struct {
	KeysFile   string   `long:"keys-file" short:"f" description:"Keys file location (default: ~/.kaspawallet/<network>/keys.json)"`
	PrivateKey string   `long:"private-key" short:"k" description:"The private key of the sender (encoded in hex); overrides the keys file"`
	Inputs     []string `long:"input" short:"i" description:"An outpoint to spend, formatted as txid:index" required:"true"`
	Outputs    []string `long:"output" short:"o" description:"A destination, formatted as address:amount (amount in sompi)" required:"true"`
	FeeRate    uint64   `long:"fee-rate" short:"r" description:"Fee rate in sompi per kilobyte" default:"1000"`
	config.NetworkFlags
}

type signConfig struct {
	KeysFile    string `long:"keys-file" short:"f" description:"Keys file location (default: ~/.kaspawallet/<network>/keys.json)"`
	PrivateKey  string `long:"private-key" short:"k" description:"The private key of the signer (encoded in hex); overrides the keys file"`
	Transaction string `long:"transaction" short:"t" description:"The transaction to sign (encoded in hex)" required:"true"`
	config.NetworkFlags
}

type estimateFeeConfig struct {
	Inputs  int    `long:"inputs" short:"i" description:"Number of inputs" required:"true"`
	Outputs int    `long:"outputs" short:"o" description:"Number of outputs" required:"true"`
	FeeRate uint64 `long:"fee-rate" short:"r" description:"Fee rate in sompi per kilobyte" default:"1000"`
	config.NetworkFlags
}

type validateAddressConfig struct {
	Address string `long:"address" short:"d" description:"The address to validate" required:"true"`
	config.NetworkFlags
}

type dumpUnencryptedDataConfig struct {
	KeysFile string `long:"keys-file" short:"f" description:"Keys file location (default: ~/.kaspawallet/<network>/keys.json)"`
	config.NetworkFlags
}

func parseCommandLine() (subCommand string, config interface{}) {
	cfg := &struct{}{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)

	createConf := &createConfig{}
	parser.AddCommand(createSubCmd, "Creates a new wallet",
		"Creates a new wallet: a mnemonic, a key pair and an encrypted keys file", createConf)

	showAddressConf := &showAddressConfig{}
	parser.AddCommand(showAddressSubCmd, "Shows the public address of the current wallet",
		"Shows the public address of the current wallet", showAddressConf)

	sendConf := &sendConfig{}
	parser.AddCommand(sendSubCmd, "Builds and signs a transaction",
		"Builds a transaction from the given inputs and outputs, signs it and prints its hex form", sendConf)

	signConf := &signConfig{}
	parser.AddCommand(signSubCmd, "Signs the given transaction",
		"Signs every unsigned input of the given hex-encoded transaction", signConf)

	estimateFeeConf := &estimateFeeConfig{}
	parser.AddCommand(estimateFeeSubCmd, "Estimates the fee of a transaction",
		"Estimates the fee of a transaction with the given number of inputs and outputs", estimateFeeConf)

	validateAddressConf := &validateAddressConfig{}
	parser.AddCommand(validateAddressSubCmd, "Validates an address",
		"Checks the structure and checksum of the given address", validateAddressConf)

	dumpUnencryptedDataConf := &dumpUnencryptedDataConfig{}
	parser.AddCommand(dumpUnencryptedDataSubCmd, "Prints the unencrypted wallet data",
		"Prints the unencrypted wallet data, including the mnemonic and the private key. Anyone "+
			"who sees it can access the wallet funds", dumpUnencryptedDataConf)

	_, err := parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
		return "", nil
	}

	switch parser.Command.Active.Name {
	case createSubCmd:
		err := createConf.ResolveNetwork(parser)
		if err != nil {
			printErrorAndExit(err)
		}
		config = createConf
	case showAddressSubCmd:
		err := showAddressConf.ResolveNetwork(parser)
		if err != nil {
			printErrorAndExit(err)
		}
		config = showAddressConf
	case sendSubCmd:
		err := sendConf.ResolveNetwork(parser)
		if err != nil {
			printErrorAndExit(err)
		}
		config = sendConf
	case signSubCmd:
		err := signConf.ResolveNetwork(parser)
		if err != nil {
			printErrorAndExit(err)
		}
		config = signConf
	case estimateFeeSubCmd:
		err := estimateFeeConf.ResolveNetwork(parser)
		if err != nil {
			printErrorAndExit(err)
		}
		config = estimateFeeConf
	case validateAddressSubCmd:
		err := validateAddressConf.ResolveNetwork(parser)
		if err != nil {
			printErrorAndExit(err)
		}
		config = validateAddressConf
	case dumpUnencryptedDataSubCmd:
		err := dumpUnencryptedDataConf.ResolveNetwork(parser)
		if err != nil {
			printErrorAndExit(err)
		}
		config = dumpUnencryptedDataConf
	}

	return parser.Command.Active.Name, config
}
