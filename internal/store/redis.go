package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	model "github.com/mokobill/MedTrack/internal/models"
	"github.com/mokobill/MedTrack/internal/utils"
)

// RedisStore persiste les documents utilisateur dans Redis
type RedisStore struct {
	client    *redis.Client
	namespace string
}

// RedisConfig regroupe les paramètres de connexion Redis
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	Namespace string
}

// NewRedisStore crée un store Redis et vérifie la connexion
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewRedisStoreWithClient(client, cfg.Namespace), nil
}

// NewRedisStoreWithClient crée un store à partir d'un client existant
// (les tests injectent un client miniredis par ce chemin)
func NewRedisStoreWithClient(client *redis.Client, namespace string) *RedisStore {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &RedisStore{client: client, namespace: namespace}
}

func (r *RedisStore) key(username string) string {
	return r.namespace + "-" + username
}

func (r *RedisStore) Load(ctx context.Context, username string) *model.UserState {
	raw, err := r.client.Get(ctx, r.key(username)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			// Store illisible : on préfère perdre le cache que planter
			utils.LogError("loading state for %s: %v", username, err)
		}
		return DefaultState()
	}
	return decodeState(raw, username)
}

func (r *RedisStore) Save(ctx context.Context, username string, state *model.UserState) error {
	raw, err := encodeState(state)
	if err != nil {
		return err
	}
	// Pas de TTL : le document vit tant que l'utilisateur existe
	return r.client.Set(ctx, r.key(username), raw, 0).Err()
}

func (r *RedisStore) Clear(ctx context.Context, username string) error {
	return r.client.Del(ctx, r.key(username)).Err()
}

// Close ferme la connexion Redis
func (r *RedisStore) Close() error {
	return r.client.Close()
}

func encodeState(state *model.UserState) ([]byte, error) {
	return json.Marshal(state)
}

func decodeState(raw []byte, username string) *model.UserState {
	var saved model.UserState
	if err := json.Unmarshal(raw, &saved); err != nil {
		utils.LogError("corrupt state for %s, falling back to defaults: %v", username, err)
		return DefaultState()
	}
	return mergeWithDefaults(&saved)
}
