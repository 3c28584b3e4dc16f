package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/insolar/ledgerstate/amount"
	"github.com/insolar/ledgerstate/configuration"
	"github.com/insolar/ledgerstate/deltaset"
	"github.com/insolar/ledgerstate/ledgerstore"
	"github.com/insolar/ledgerstate/sle"
	"github.com/insolar/ledgerstate/ter"
	"github.com/insolar/ledgerstate/transactor"
)

// demo accounts, deterministic so run's output is reproducible.
var (
	alice = accountID(0x01)
	bob   = accountID(0x02)
	carol = accountID(0x03)
)

func accountID(b byte) sle.AccountID {
	var a sle.AccountID
	a[0] = b
	return a
}

func loadConfig(configPath string) (configuration.Configuration, error) {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return configuration.Configuration{}, fmt.Errorf("reading config: %w", err)
		}
	}
	return configuration.Load(v)
}

// seedDemoLedger builds a small ledger with three funded native accounts,
// the starting point runDemo replays its fixture transactions against.
func seedDemoLedger(cfg configuration.Configuration) *ledgerstore.MemStore {
	store := ledgerstore.NewMemStore(cfg.Ledger.ReserveBase, cfg.Ledger.ReserveIncrement)

	for _, acct := range []sle.AccountID{alice, bob, carol} {
		root := sle.NewAccountRoot(ledgerstore.AccountRootIndex(acct), acct)
		root.SetNativeBalance(sle.XRPCurrency, 1_000_000_000)
		root.Sequence = 1
		store.Seed(root)
	}
	return store
}

// fixtureTxns is the demo transaction list run replays in order: a native
// payment, a trust line, an offer placed then cancelled.
func fixtureTxns() []*transactor.Tx {
	return []*transactor.Tx{
		{
			ID: txIndex(1), Type: transactor.TypePayment,
			Account: alice, Sequence: 1, Fee: 10,
			SigningPubKeyAccount: alice, Verified: true,
			Destination: bob, Amount: amount.Drops(25_000_000),
		},
		{
			ID: txIndex(2), Type: transactor.TypeSetTrust,
			Account: bob, Sequence: 1, Fee: 10,
			SigningPubKeyAccount: bob, Verified: true,
			LimitAmount: amount.Issued(1_000_000_000_000_000, 0, currencyCode("USD"), carol),
		},
		{
			ID: txIndex(3), Type: transactor.TypeCreateOffer,
			Account: carol, Sequence: 1, Fee: 10,
			SigningPubKeyAccount: carol, Verified: true,
			TakerPays: amount.Drops(1_000_000),
			TakerGets: amount.Issued(1_000_000_000_000_000, 0, currencyCode("USD"), carol),
		},
		{
			ID: txIndex(4), Type: transactor.TypeCancelOffer,
			Account: carol, Sequence: 2, Fee: 10,
			SigningPubKeyAccount: carol, Verified: true,
			OfferSequence: 1,
		},
	}
}

func txIndex(b byte) sle.Index {
	var idx sle.Index
	idx[0] = b
	return idx
}

func currencyCode(code string) sle.CurrencyCode {
	var c sle.CurrencyCode
	copy(c[:], code)
	return c
}

// resultJSON is the JSON-printable projection of one replayed transaction's
// outcome: deltaset.Metadata carries unexported-typed/fixed-size-array
// fields that don't render usefully through encoding/json on their own.
type resultJSON struct {
	TxID      string     `json:"txId"`
	Code      string     `json:"code"`
	Persisted bool       `json:"persisted"`
	Nodes     []nodeJSON `json:"affectedNodes"`
}

type nodeJSON struct {
	Kind      string      `json:"kind"`
	EntryType string      `json:"entryType"`
	Index     string      `json:"index"`
	Previous  []sle.Field `json:"previousFields,omitempty"`
	Final     []sle.Field `json:"finalFields,omitempty"`
	New       []sle.Field `json:"newFields,omitempty"`
}

func runDemo(configPath string, indent bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	store := seedDemoLedger(cfg)

	var results []resultJSON
	for i, tx := range fixtureTxns() {
		set, code := transactor.Dispatch(store, tx, deltaset.Params{OpenLedger: true, Admin: cfg.Fee.Admin}, cfg.Fee.BaseFee)

		if code.Persists() {
			if err := store.Apply(set); err != nil {
				logger.Error("applying transaction failed", err)
				return err
			}
		} else {
			logger.Warn(fmt.Sprintf("transaction %d rejected: %s", i, code.Name()))
		}

		meta := set.CalcRawMeta(code, uint32(i))
		results = append(results, toResultJSON(tx.ID, code, meta))
	}

	enc := json.NewEncoder(os.Stdout)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(results)
}

func toResultJSON(txID sle.Index, code ter.Code, meta deltaset.Metadata) resultJSON {
	out := resultJSON{
		TxID:      txID.String(),
		Code:      code.Name(),
		Persisted: code.Persists(),
	}
	for _, n := range meta.AffectedNodes {
		out.Nodes = append(out.Nodes, nodeJSON{
			Kind:      fmt.Sprintf("%v", n.Kind),
			EntryType: n.EntryType.String(),
			Index:     n.Index.String(),
			Previous:  n.PreviousFields,
			Final:     n.FinalFields,
			New:       n.NewFields,
		})
	}
	return out
}
