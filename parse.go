package main

import (
	"strconv"
	"strings"

	"github.com/kaspanet/kaspawallet/libwallet"
	"github.com/pkg/errors"
)

// parseOutpoint parses an input argument of the form txid:index.
func parseOutpoint(input string) (*libwallet.PreviousOutpoint, error) {
	parts := strings.Split(input, ":")
	if len(parts) != 2 {
		return nil, errors.Errorf("invalid input format %q, expected txid:index", input)
	}

	index, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid output index in input %q", input)
	}

	return &libwallet.PreviousOutpoint{
		TransactionID: parts[0],
		Index:         uint32(index),
	}, nil
}

// parsePayment parses an output argument of the form address:amount. The
// address itself contains a colon (e.g. kaspa:...), so the amount is split
// off at the last colon.
func parsePayment(output string) (*libwallet.Payment, error) {
	delimiter := strings.LastIndex(output, ":")
	if delimiter <= 0 || delimiter == len(output)-1 {
		return nil, errors.Errorf("invalid output format %q, expected address:amount", output)
	}

	amount, err := strconv.ParseUint(output[delimiter+1:], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid amount in output %q", output)
	}

	return &libwallet.Payment{
		Address: output[:delimiter],
		Amount:  amount,
	}, nil
}
