package models

import (
	"cmp"
	"encoding/json"
	"slices"
	"strings"

	"github.com/dzimiks/uniswap-contracts/internal/domain"
)

// ChainID identifies the network a deployment log belongs to. Logs written by
// older tooling store it as a bare JSON number while newer ones use a string;
// the on-disk representation is preserved on round-trip.
type ChainID struct {
	value   string
	numeric bool
}

// NewChainID creates a ChainID that serializes as a JSON string.
func NewChainID(value string) ChainID {
	return ChainID{value: value}
}

func (c ChainID) String() string {
	return c.value
}

func (c ChainID) MarshalJSON() ([]byte, error) {
	if c.numeric {
		return []byte(c.value), nil
	}
	return json.Marshal(c.value)
}

func (c *ChainID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = ChainID{value: s}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = ChainID{value: n.String(), numeric: true}
	return nil
}

// ConstructorArgs maps constructor parameter names to their decoded values.
// Values are strings, or nested ConstructorArgs for tuple parameters.
type ConstructorArgs map[string]any

// RecordInput holds the decoded inputs a contract was deployed with.
type RecordInput struct {
	Constructor ConstructorArgs `json:"constructor"`
}

// ContractRecord describes one deployed contract inside a history entry.
type ContractRecord struct {
	Address       string      `json:"address"`
	Proxy         bool        `json:"proxy"`
	DeploymentTxn string      `json:"deploymentTxn"`
	Input         RecordInput `json:"input"`
	// PoolInitCodeHash is only set for recognized factory contracts.
	PoolInitCodeHash string `json:"poolInitCodeHash,omitempty"`
}

// HistoryEntry is one registration event, keyed by contract name.
type HistoryEntry struct {
	Timestamp  uint64                    `json:"timestamp"`
	CommitHash string                    `json:"commitHash,omitempty"`
	Contracts  map[string]ContractRecord `json:"contracts"`
}

// LatestRecord is the derived most-recent view for one contract name.
type LatestRecord struct {
	Address          string `json:"address"`
	Proxy            bool   `json:"proxy"`
	DeploymentTxn    string `json:"deploymentTxn"`
	Timestamp        uint64 `json:"timestamp"`
	CommitHash       string `json:"commitHash,omitempty"`
	PoolInitCodeHash string `json:"poolInitCodeHash,omitempty"`
}

// DeploymentLog is the per-network deployment ledger persisted at
// deployments/json/<chainId>.json. History is append-only; Latest is fully
// derived from History by Reconcile and never hand-edited.
type DeploymentLog struct {
	ChainID ChainID                 `json:"chainId"`
	Latest  map[string]LatestRecord `json:"latest"`
	History []HistoryEntry          `json:"history"`
}

// NewDeploymentLog creates an empty log for a network.
func NewDeploymentLog(chainID ChainID) *DeploymentLog {
	return &DeploymentLog{
		ChainID: chainID,
		Latest:  map[string]LatestRecord{},
		History: []HistoryEntry{},
	}
}

// DetectDuplicate fails with a DuplicateContractError if any contract record
// anywhere in history already carries the given address. Proxy relationships
// are not considered; a proxy target is a plain address for this check.
func (l *DeploymentLog) DetectDuplicate(address string) error {
	for _, entry := range l.History {
		for _, record := range entry.Contracts {
			if strings.EqualFold(record.Address, address) {
				return &domain.DuplicateContractError{Address: address}
			}
		}
	}
	return nil
}

// Reconcile sorts history by timestamp descending and rebuilds Latest.
//
// The sort is stable, so entries with equal timestamps keep their pre-sort
// relative order, and during the fold the first entry seen for a name wins:
// a later entry only replaces the recorded one when its timestamp is
// strictly greater, which never happens on a descending scan.
func (l *DeploymentLog) Reconcile() {
	slices.SortStableFunc(l.History, func(a, b HistoryEntry) int {
		return cmp.Compare(b.Timestamp, a.Timestamp)
	})

	latest := make(map[string]LatestRecord, len(l.Latest))
	for _, entry := range l.History {
		for name, record := range entry.Contracts {
			if prev, ok := latest[name]; ok && prev.Timestamp >= entry.Timestamp {
				continue
			}
			latest[name] = LatestRecord{
				Address:          record.Address,
				Proxy:            record.Proxy,
				DeploymentTxn:    record.DeploymentTxn,
				Timestamp:        entry.Timestamp,
				CommitHash:       entry.CommitHash,
				PoolInitCodeHash: record.PoolInitCodeHash,
			}
		}
	}
	l.Latest = latest
}
