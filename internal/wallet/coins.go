package wallet

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/btcsuite/btcd/wire"
)

const (
	// dustLimit is the smallest output the wallet creates.
	dustLimit = 546

	// Virtual sizes of a segwit transaction skeleton and of one P2WPKH
	// input, rounded up.
	txOverheadVSize = 11
	p2wpkhInVSize   = 68
)

type coin struct {
	outpoint wire.OutPoint
	value    int64
}

type selection struct {
	coins  []coin
	fee    int64
	change int64
}

func outputVSize(pkScript []byte) int64 {
	// value + script length prefix + script
	return int64(8 + wire.VarIntSerializeSize(uint64(len(pkScript))) + len(pkScript))
}

func estimateVSize(inputs int, outputScripts [][]byte) int64 {
	size := int64(txOverheadVSize) + int64(inputs)*p2wpkhInVSize
	for _, s := range outputScripts {
		size += outputVSize(s)
	}
	return size
}

// selectCoins picks the largest coins first until they cover target plus
// the fee at feeRate subunits per vbyte. Change below the dust limit is
// left to the fee.
func selectCoins(coins []coin, target, feeRate int64, outputScripts [][]byte, changeScript []byte) (selection, error) {
	sorted := slices.Clone(coins)
	slices.SortFunc(sorted, func(a, b coin) int {
		return cmp.Compare(b.value, a.value)
	})

	withChange := append(slices.Clone(outputScripts), changeScript)

	var total int64
	for i, c := range sorted {
		total += c.value
		n := i + 1

		feeNoChange := estimateVSize(n, outputScripts) * feeRate
		if total < target+feeNoChange {
			continue
		}

		fee := estimateVSize(n, withChange) * feeRate
		if change := total - target - fee; change >= dustLimit {
			return selection{coins: sorted[:n], fee: fee, change: change}, nil
		}
		return selection{coins: sorted[:n], fee: total - target}, nil
	}

	return selection{}, fmt.Errorf("%w: have %d, need %d plus fee", ErrInsufficientFunds, total, target)
}
