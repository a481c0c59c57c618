package token

import (
	"fmt"
	"time"

	"github.com/go-redis/redis"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(client *redis.Client) *repository {
	return &repository{client}
}

type repository struct {
	client *redis.Client
}

func key(userId uint, tokenId string) string {
	return fmt.Sprintf("refreshToken:%d:%s", userId, tokenId)
}

func (r repository) SetRefreshToken(userId uint, tokenId string, expiresIn time.Duration) error {
	return r.client.Set(key(userId, tokenId), "valid", expiresIn).Err()
}

func (r repository) GetRefreshToken(userId uint, tokenId string) (bool, error) {
	err := r.client.Get(key(userId, tokenId)).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r repository) DeleteRefreshToken(userId uint, tokenId string) error {
	return r.client.Del(key(userId, tokenId)).Err()
}

func (r repository) DeleteRefreshTokens(userId uint) error {
	keys, err := r.client.Keys(fmt.Sprintf("refreshToken:%d:*", userId)).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(keys...).Err()
}
