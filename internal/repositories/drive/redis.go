package drive

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/drive-api/internal/entities/drive"
	"github.com/KirkDiggler/drive-api/internal/errors"
	redisclient "github.com/KirkDiggler/drive-api/internal/redis"
)

const (
	pieceKeyPrefix = "drive:piece:"
	indexKey       = "drive:pieces"

	// Error messages
	errPieceNil     = "drive cannot be nil"
	errDriveIDEmpty = "drive ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis drive repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed drive repository.
//
// Each drive is one JSON document under drive:piece:{id}. The sorted set
// drive:pieces scores drive IDs by creation time in milliseconds and backs
// newest-first listing.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// GetKey returns the Redis key for a drive
func GetKey(id string) string {
	return pieceKeyPrefix + id
}

func validatePiece(piece *drive.Piece) error {
	if piece == nil {
		return errors.InvalidArgument(errPieceNil)
	}
	if piece.ID == "" {
		return errors.InvalidArgument(errDriveIDEmpty)
	}
	return nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validatePiece(input.Piece); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Piece)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal drive data")
	}

	key := GetKey(input.Piece.ID)
	created, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create drive %s", input.Piece.ID)
	}
	if !created {
		return nil, errors.AlreadyExistsf("drive with ID %s already exists", input.Piece.ID)
	}

	err = r.client.ZAdd(ctx, indexKey, redis.Z{
		Score:  float64(input.Piece.CreatedAt.UnixMilli()),
		Member: input.Piece.ID,
	}).Err()
	if err != nil {
		// Without an index entry the drive would never be listed
		_ = r.client.Del(ctx, key).Err()
		return nil, errors.Wrapf(err, "failed to index drive %s", input.Piece.ID)
	}

	return &CreateOutput{Piece: input.Piece}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDriveIDEmpty)
	}

	result, err := r.client.Get(ctx, GetKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("drive with ID %s not found", input.ID).
				WithMeta("drive_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get drive %s", input.ID)
	}

	piece, err := decodePiece(result)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Piece: piece}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validatePiece(input.Piece); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Piece)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal drive data")
	}

	updated, err := r.client.SetXX(ctx, GetKey(input.Piece.ID), data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update drive %s", input.Piece.ID)
	}
	if !updated {
		return nil, errors.NotFoundf("drive with ID %s not found", input.Piece.ID).
			WithMeta("drive_id", input.Piece.ID)
	}

	return &UpdateOutput{Piece: input.Piece}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDriveIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, GetKey(input.ID))
	pipe.ZRem(ctx, indexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete drive %s", input.ID)
	}

	if del.Val() == 0 {
		return nil, errors.NotFoundf("drive with ID %s not found", input.ID).
			WithMeta("drive_id", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.Offset < 0 {
		return nil, errors.InvalidArgument("offset cannot be negative")
	}
	if input.Limit <= 0 {
		return nil, errors.InvalidArgument("limit must be positive")
	}

	total, err := r.client.ZCard(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to count drives")
	}

	start := int64(input.Offset)
	stop := start + int64(input.Limit) - 1
	ids, err := r.client.ZRevRange(ctx, indexKey, start, stop).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read drive index")
	}

	pieces, missing, err := r.loadPieces(ctx, ids)
	if err != nil {
		return nil, err
	}

	return &ListOutput{
		Pieces: pieces,
		Total:  int(total) - missing,
	}, nil
}

func (r *redisRepository) ListAll(ctx context.Context, _ ListAllInput) (*ListAllOutput, error) {
	ids, err := r.client.ZRevRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read drive index")
	}

	pieces, _, err := r.loadPieces(ctx, ids)
	if err != nil {
		return nil, err
	}

	return &ListAllOutput{Pieces: pieces}, nil
}

// loadPieces fetches drives in index order. IDs whose document is gone are
// removed from the index and counted in missing.
func (r *redisRepository) loadPieces(ctx context.Context, ids []string) ([]*drive.Piece, int, error) {
	pieces := make([]*drive.Piece, 0, len(ids))
	if len(ids) == 0 {
		return pieces, 0, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = GetKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, 0, errors.Wrapf(err, "failed to get drives")
	}

	missing := 0
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			slog.WarnContext(ctx, "drive not found, cleaning up index",
				"drive_id", ids[i],
				"index_key", indexKey)
			r.client.ZRem(ctx, indexKey, ids[i])
			missing++
			continue
		}

		piece, err := decodePiece(raw)
		if err != nil {
			slog.ErrorContext(ctx, "failed to decode drive",
				"drive_id", ids[i],
				"error", err.Error())
			return nil, 0, err
		}
		pieces = append(pieces, piece)
	}

	slog.DebugContext(ctx, "loaded drives from index",
		"requested", len(ids),
		"found", len(pieces))

	return pieces, missing, nil
}

func decodePiece(raw string) (*drive.Piece, error) {
	var piece drive.Piece
	if err := json.Unmarshal([]byte(raw), &piece); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal drive data")
	}
	return &piece, nil
}
