package main

import (
	"fmt"
	"os"

	"github.com/kaspanet/kaspawallet/version"
	"github.com/pkg/errors"
)

func main() {
	subCmd, config := parseCommandLine()
	log.Debugf("Version %s", version.Version())

	var err error
	switch subCmd {
	case createSubCmd:
		err = create(config.(*createConfig))
	case showAddressSubCmd:
		err = showAddress(config.(*showAddressConfig))
	case sendSubCmd:
		err = send(config.(*sendConfig))
	case signSubCmd:
		err = sign(config.(*signConfig))
	case estimateFeeSubCmd:
		err = estimateFee(config.(*estimateFeeConfig))
	case validateAddressSubCmd:
		err = validateAddress(config.(*validateAddressConfig))
	case dumpUnencryptedDataSubCmd:
		err = dumpUnencryptedData(config.(*dumpUnencryptedDataConfig))
	default:
		err = errors.Errorf("Unknown sub-command '%s'", subCmd)
	}

	if err != nil {
		printErrorAndExit(err)
	}
}

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}
