// Package events drives block by block log processing.
package events

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goran-ethernal/QuorumEventGate/pkg/chain"
)

const (
	routingKeyPrefix = "BLK"
	// anonymousTopic replaces topic0 in the routing key of logs without topics
	anonymousTopic = "anonymous"
)

// EventObject is the payload published for every valid log.
type EventObject struct {
	ContractAddress  string `json:"contractAddress"`
	Data             string `json:"data"`
	BlockNumber      uint64 `json:"blockNumber"`
	TransactionIndex uint   `json:"transactionIndex"`
	TransactionHash  string `json:"transactionHash"`
	LogIndex         int    `json:"logIndex"`
}

// NewEventObject builds the payload of log, found at position logIndex of receipt.
func NewEventObject(log types.Log, receipt *chain.Receipt, blockNumber uint64, logIndex int) EventObject {
	return EventObject{
		ContractAddress:  log.Address.Hex(),
		Data:             hexutil.Encode(log.Data),
		BlockNumber:      blockNumber,
		TransactionIndex: receipt.TransactionIndex,
		TransactionHash:  receipt.TransactionHash.Hex(),
		LogIndex:         logIndex,
	}
}

// RoutingKey returns BLK.<topic0>.
func RoutingKey(log types.Log) string {
	if len(log.Topics) == 0 {
		return routingKeyPrefix + "." + anonymousTopic
	}
	return routingKeyPrefix + "." + log.Topics[0].Hex()
}
