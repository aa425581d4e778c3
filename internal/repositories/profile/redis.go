package profile

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/railforge/railforge/internal/entities/game"
	"github.com/railforge/railforge/internal/errors"
	"github.com/railforge/railforge/internal/pkg/clock"
	redisclient "github.com/railforge/railforge/internal/redis"
)

const (
	profileKeyPrefix  = "profile:"
	playerIndexPrefix = "profile:player:"

	errProfileNil     = "profile cannot be nil"
	errProfileIDEmpty = "profile ID cannot be empty"
	errPlayerIDEmpty  = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis profile repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
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

// NewRedis creates a new Redis-backed profile repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Profile == nil {
		return nil, errors.InvalidArgument(errProfileNil)
	}
	if input.Profile.ID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}

	key := profileKeyPrefix + input.Profile.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("profile with ID %s already exists", input.Profile.ID)
	}

	now := r.clock.Now().Unix()
	input.Profile.CreatedAtUnix = now
	input.Profile.UpdatedAtUnix = now

	data, err := json.Marshal(input.Profile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal profile")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // profiles live until deleted
	if input.Profile.PlayerID != "" {
		pipe.SAdd(ctx, playerIndexPrefix+input.Profile.PlayerID, input.Profile.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create profile")
	}

	return &CreateOutput{Profile: input.Profile}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}

	key := profileKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("profile with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get profile")
	}

	var p game.Profile
	if err := json.Unmarshal([]byte(result), &p); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal profile")
	}

	return &GetOutput{Profile: &p}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Profile == nil {
		return nil, errors.InvalidArgument(errProfileNil)
	}
	if input.Profile.ID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}

	key := profileKeyPrefix + input.Profile.ID

	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("profile with ID %s not found", input.Profile.ID)
		}
		return nil, errors.Wrapf(err, "failed to get profile")
	}

	var existing game.Profile
	if err := json.Unmarshal([]byte(result), &existing); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal existing profile")
	}

	input.Profile.CreatedAtUnix = existing.CreatedAtUnix
	input.Profile.UpdatedAtUnix = r.clock.Now().Unix()

	data, err := json.Marshal(input.Profile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal profile")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	if existing.PlayerID != input.Profile.PlayerID {
		if existing.PlayerID != "" {
			pipe.SRem(ctx, playerIndexPrefix+existing.PlayerID, input.Profile.ID)
		}
		if input.Profile.PlayerID != "" {
			pipe.SAdd(ctx, playerIndexPrefix+input.Profile.PlayerID, input.Profile.ID)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update profile")
	}

	return &UpdateOutput{Profile: input.Profile}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, profileKeyPrefix+input.ID)
	if getOutput.Profile.PlayerID != "" {
		pipe.SRem(ctx, playerIndexPrefix+getOutput.Profile.PlayerID, input.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete profile")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByPlayerID(
	ctx context.Context,
	input ListByPlayerIDInput,
) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	indexKey := playerIndexPrefix + input.PlayerID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get profiles from index %s", indexKey)
	}

	profiles := make([]*game.Profile, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// stale index entries are cleaned up rather than surfaced
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "profile not found, cleaning up index",
					"profile_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get profile %s", id)
		}
		profiles = append(profiles, getOutput.Profile)
	}

	return &ListByPlayerIDOutput{Profiles: profiles}, nil
}
