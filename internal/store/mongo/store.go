// Package mongo implements the event gate stores on MongoDB.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goran-ethernal/QuorumEventGate/internal/db"
	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/pkg/config"
	"github.com/goran-ethernal/QuorumEventGate/pkg/store"
	"go.mongodb.org/mongo-driver/bson"
	mgo "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	backend = "mongo"

	trustCollection    = "contracts"
	progressCollection = "lastprocessedblocks"
	rangeCollection    = "autowhitelists"

	// rangeID keys the single range document so a conditional upsert cannot create a second one.
	rangeID = "range"
)

// Compile-time check to ensure Store implements store.Store interface.
var _ store.Store = (*Store)(nil)

type trustDocument struct {
	Address   string `bson:"address"`
	Status    string `bson:"status"`
	TxHash    string `bson:"txHash,omitempty"`
	UpdatedAt int64  `bson:"updatedAt"`
}

type progressDocument struct {
	BlockNumber     int64  `bson:"blockNumber"`
	TransactionHash string `bson:"transactionHash"`
	LogIndex        int64  `bson:"logIndex"`
	UpdatedAt       int64  `bson:"updatedAt"`
}

type rangeDocument struct {
	StartBlockNumber int64  `bson:"startBlockNumber"`
	StopBlockNumber  *int64 `bson:"stopBlockNumber,omitempty"`
}

// Store keeps the three documents in MongoDB. Progress and range are single
// documents upserted with an empty filter.
type Store struct {
	client   *mgo.Client
	database *mgo.Database
	timeout  time.Duration
	log      *logger.Logger
	now      func() time.Time
}

// New connects to cfg.URI and ensures the trust collection index.
func New(ctx context.Context, cfg config.MongoConfig, log *logger.Logger) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.Timeout.Duration)
	defer cancel()

	client, err := mgo.Connect(connectCtx, options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.Timeout.Duration).
		SetServerSelectionTimeout(cfg.Timeout.Duration))
	if err != nil {
		return nil, fmt.Errorf("cannot connect to mongo DB: %w", err)
	}

	s := &Store{
		client:   client,
		database: client.Database(cfg.Database),
		timeout:  cfg.Timeout.Duration,
		log:      log,
		now:      time.Now,
	}

	_, err = s.database.Collection(trustCollection).Indexes().CreateOne(connectCtx, mgo.IndexModel{
		Keys:    bson.D{{Key: "address", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, classify("create trust index", err)
	}

	return s, nil
}

func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	kind := store.KindUnknown
	switch {
	case mgo.IsDuplicateKeyError(err):
		kind = store.KindDuplicate
	case mgo.IsNetworkError(err), mgo.IsTimeout(err), errors.Is(err, mgo.ErrClientDisconnected):
		kind = store.KindConnection
	case errors.Is(err, mgo.ErrNilDocument), errors.Is(err, mgo.ErrEmptySlice):
		kind = store.KindValidation
	}

	db.DBErrorInc(backend, string(kind))

	return store.NewDatabaseError(op, kind, err)
}

func (s *Store) opContext(ctx context.Context, op string) (context.Context, context.CancelFunc) {
	db.DBQueryInc(backend, op)
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Store) GetStatus(ctx context.Context, address string) (store.TrustStatus, error) {
	record, err := s.GetRecord(ctx, address)
	if err != nil || record == nil {
		return store.StatusUnknown, err
	}

	return record.Status, nil
}

func (s *Store) GetRecord(ctx context.Context, address string) (*store.TrustRecord, error) {
	addr, err := store.NormalizeAddress(address)
	if err != nil {
		return nil, err
	}

	const op = "get trust record"
	ctx, cancel := s.opContext(ctx, op)
	defer cancel()

	var doc trustDocument
	err = s.database.Collection(trustCollection).FindOne(ctx, bson.M{"address": addr.Hex()}).Decode(&doc)
	if errors.Is(err, mgo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, classify(op, err)
	}

	return &store.TrustRecord{
		Address:   common.HexToAddress(doc.Address),
		Status:    store.TrustStatus(doc.Status),
		TxHash:    doc.TxHash,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

func (s *Store) Whitelist(ctx context.Context, address string, txHash string) error {
	return s.setStatus(ctx, address, store.StatusWhitelisted, txHash)
}

func (s *Store) Blacklist(ctx context.Context, address string, txHash string) error {
	return s.setStatus(ctx, address, store.StatusBlacklisted, txHash)
}

func (s *Store) setStatus(ctx context.Context, address string, status store.TrustStatus, txHash string) error {
	addr, err := store.NormalizeAddress(address)
	if err != nil {
		return err
	}

	const op = "upsert trust record"
	ctx, cancel := s.opContext(ctx, op)
	defer cancel()

	doc := trustDocument{
		Address:   addr.Hex(),
		Status:    string(status),
		TxHash:    txHash,
		UpdatedAt: s.now().Unix(),
	}

	_, err = s.database.Collection(trustCollection).ReplaceOne(ctx,
		bson.M{"address": doc.Address}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return classify(op, err)
	}

	s.log.Debugw("trust status updated", "address", doc.Address, "status", status, "txHash", txHash)
	return nil
}

func (s *Store) GetLast(ctx context.Context) (*store.Cursor, error) {
	const op = "get progress"
	ctx, cancel := s.opContext(ctx, op)
	defer cancel()

	var doc progressDocument
	err := s.database.Collection(progressCollection).FindOne(ctx, bson.M{}).Decode(&doc)
	if errors.Is(err, mgo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, classify(op, err)
	}

	return &store.Cursor{
		BlockNumber:     uint64(doc.BlockNumber),
		TransactionHash: doc.TransactionHash,
		LogIndex:        uint64(doc.LogIndex),
	}, nil
}

func (s *Store) Save(ctx context.Context, blockNumber uint64, txHash string, logIndex uint64) error {
	const op = "save progress"
	ctx, cancel := s.opContext(ctx, op)
	defer cancel()

	doc := progressDocument{
		BlockNumber:     int64(blockNumber),
		TransactionHash: txHash,
		LogIndex:        int64(logIndex),
		UpdatedAt:       s.now().Unix(),
	}

	_, err := s.database.Collection(progressCollection).ReplaceOne(ctx, bson.M{}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return classify(op, err)
	}

	return nil
}

func (s *Store) getRange(ctx context.Context, op string) (*rangeDocument, error) {
	ctx, cancel := s.opContext(ctx, op)
	defer cancel()

	var doc rangeDocument
	err := s.database.Collection(rangeCollection).FindOne(ctx, bson.M{"_id": rangeID}).Decode(&doc)
	if errors.Is(err, mgo.ErrNoDocuments) {
		return &rangeDocument{}, nil
	}
	if err != nil {
		return nil, classify(op, err)
	}

	return &doc, nil
}

func (s *Store) GetStart(ctx context.Context) (uint64, error) {
	doc, err := s.getRange(ctx, "get auto-whitelist start")
	if err != nil {
		return 0, err
	}

	return uint64(doc.StartBlockNumber), nil
}

func (s *Store) GetStop(ctx context.Context) (*int64, error) {
	doc, err := s.getRange(ctx, "get auto-whitelist stop")
	if err != nil {
		return nil, err
	}

	return doc.StopBlockNumber, nil
}

func (s *Store) SetStart(ctx context.Context, start uint64) error {
	const op = "set auto-whitelist start"
	ctx, cancel := s.opContext(ctx, op)
	defer cancel()

	_, err := s.database.Collection(rangeCollection).UpdateOne(ctx, bson.M{"_id": rangeID},
		bson.M{"$set": bson.M{"startBlockNumber": int64(start)}}, options.Update().SetUpsert(true))

	return classify(op, err)
}

// SetStop only writes when no stop exists. When another writer got there first
// the upsert collides on _id and the existing stop is reported.
func (s *Store) SetStop(ctx context.Context, stop int64) error {
	const op = "set auto-whitelist stop"

	doc, err := s.getRange(ctx, op)
	if err != nil {
		return err
	}
	if doc.StopBlockNumber != nil {
		return &store.StopAlreadySetError{Existing: *doc.StopBlockNumber}
	}

	opCtx, cancel := s.opContext(ctx, op)
	defer cancel()

	res, err := s.database.Collection(rangeCollection).UpdateOne(opCtx,
		bson.M{"_id": rangeID, "stopBlockNumber": bson.M{"$exists": false}},
		bson.M{
			"$set":         bson.M{"stopBlockNumber": stop},
			"$setOnInsert": bson.M{"startBlockNumber": int64(0)},
		},
		options.Update().SetUpsert(true))
	if err != nil {
		if mgo.IsDuplicateKeyError(err) {
			return s.stopAlreadySet(ctx)
		}
		return classify(op, err)
	}
	if res.MatchedCount == 0 && res.UpsertedCount == 0 {
		return s.stopAlreadySet(ctx)
	}

	return nil
}

func (s *Store) stopAlreadySet(ctx context.Context) error {
	stop, err := s.GetStop(ctx)
	if err != nil {
		return err
	}
	if stop == nil {
		return store.NewDatabaseError("set auto-whitelist stop", store.KindUnknown, errors.New("stop write lost"))
	}

	return &store.StopAlreadySetError{Existing: *stop}
}

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := s.opContext(ctx, "ping")
	defer cancel()

	return classify("ping", s.client.Ping(ctx, readpref.Primary()))
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	return s.client.Disconnect(ctx)
}
