package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/drive-api/internal/entities/drive"
	"github.com/KirkDiggler/drive-api/internal/errors"
	redisclient "github.com/KirkDiggler/drive-api/internal/redis"
)

const (
	setTypesKey  = "drive:catalog:sets"
	statTypesKey = "drive:catalog:stats"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis catalog repository.
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

// NewRedis creates a new Redis-backed catalog repository.
// Set types live in a hash keyed by set name, stat names in a plain set.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) ListSetTypes(ctx context.Context, _ ListSetTypesInput) (*ListSetTypesOutput, error) {
	entries, err := r.client.HGetAll(ctx, setTypesKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list set types")
	}

	setTypes := make([]*drive.SetType, 0, len(entries))
	for name, raw := range entries {
		var setType drive.SetType
		if err := json.Unmarshal([]byte(raw), &setType); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal set type %s", name)
		}
		setTypes = append(setTypes, &setType)
	}

	sort.Slice(setTypes, func(i, j int) bool {
		return setTypes[i].Name < setTypes[j].Name
	})

	return &ListSetTypesOutput{SetTypes: setTypes}, nil
}

func (r *redisRepository) ListStatTypes(ctx context.Context, _ ListStatTypesInput) (*ListStatTypesOutput, error) {
	stats, err := r.client.SMembers(ctx, statTypesKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list stat types")
	}

	sort.Strings(stats)

	return &ListStatTypesOutput{Stats: stats}, nil
}

func (r *redisRepository) HasSetType(ctx context.Context, input HasSetTypeInput) (*HasSetTypeOutput, error) {
	if input.Name == "" {
		return &HasSetTypeOutput{Exists: false}, nil
	}

	exists, err := r.client.HExists(ctx, setTypesKey, input.Name).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to look up set type %s", input.Name)
	}

	return &HasSetTypeOutput{Exists: exists}, nil
}

func (r *redisRepository) HasStatTypes(ctx context.Context, input HasStatTypesInput) (*HasStatTypesOutput, error) {
	output := &HasStatTypesOutput{Unknown: []string{}}
	if len(input.Names) == 0 {
		return output, nil
	}

	members := make([]any, len(input.Names))
	for i, name := range input.Names {
		members[i] = name
	}

	found, err := r.client.SMIsMember(ctx, statTypesKey, members...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to look up stat types")
	}

	for i, ok := range found {
		if !ok {
			output.Unknown = append(output.Unknown, input.Names[i])
		}
	}

	return output, nil
}

func (r *redisRepository) SeedSetTypes(ctx context.Context, input SeedSetTypesInput) (*SeedSetTypesOutput, error) {
	if len(input.SetTypes) == 0 {
		return &SeedSetTypesOutput{}, nil
	}

	values := make([]any, 0, len(input.SetTypes)*2)
	for _, setType := range input.SetTypes {
		if setType == nil || setType.Name == "" {
			return nil, errors.InvalidArgument("set type name cannot be empty")
		}
		data, err := json.Marshal(setType)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal set type %s", setType.Name)
		}
		values = append(values, setType.Name, data)
	}

	added, err := r.client.HSet(ctx, setTypesKey, values...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to seed set types")
	}

	slog.InfoContext(ctx, "seeded set types",
		"requested", len(input.SetTypes),
		"added", added)

	return &SeedSetTypesOutput{Added: int(added)}, nil
}

func (r *redisRepository) SeedStatTypes(ctx context.Context, input SeedStatTypesInput) (*SeedStatTypesOutput, error) {
	if len(input.Stats) == 0 {
		return &SeedStatTypesOutput{}, nil
	}

	members := make([]any, 0, len(input.Stats))
	for _, stat := range input.Stats {
		if stat == "" {
			return nil, errors.InvalidArgument("stat name cannot be empty")
		}
		members = append(members, stat)
	}

	added, err := r.client.SAdd(ctx, statTypesKey, members...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to seed stat types")
	}

	slog.InfoContext(ctx, "seeded stat types",
		"requested", len(input.Stats),
		"added", added)

	return &SeedStatTypesOutput{Added: int(added)}, nil
}
