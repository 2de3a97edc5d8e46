package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL 상수 정의
const (
	TTLSetting = 10 * time.Minute // 사이트 설정 (변경 빈도 낮음)
)

// 캐시 키 접두사
const (
	PrefixSetting = "setting:"
)

// ErrUnavailable Redis 미연결
var ErrUnavailable = errors.New("redis not available")

// Service Redis 캐시 서비스 인터페이스
type Service interface {
	// 기본 캐시 연산
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	// 설정 캐시
	GetSetting(ctx context.Context, key string, dest interface{}) error
	SetSetting(ctx context.Context, key string, value interface{}) error
	InvalidateSetting(ctx context.Context, key string) error

	// 유틸리티
	IsAvailable() bool
	Ping(ctx context.Context) error
}

// IsMiss 캐시에 값이 없거나 Redis 를 쓸 수 없는 경우
func IsMiss(err error) bool {
	return errors.Is(err, redis.Nil) || errors.Is(err, ErrUnavailable)
}

// redisCache Redis 기반 캐시 구현. client 가 nil 이면 모든 연산이 no-op
type redisCache struct {
	client *redis.Client
}

// NewService 새로운 캐시 서비스 생성
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

// IsAvailable Redis 연결 가능 여부
func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

// Ping Redis 연결 테스트
func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return ErrUnavailable
	}
	return c.client.Ping(ctx).Err()
}

// Get 캐시에서 값 조회
func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return ErrUnavailable
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// Set 캐시에 값 저장
func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil // Redis 없으면 무시
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete 캐시 삭제
func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil || len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// ========================================
// 설정 캐시
// ========================================

// SettingKey 설정 캐시 키
func SettingKey(key string) string {
	return PrefixSetting + key
}

func (c *redisCache) GetSetting(ctx context.Context, key string, dest interface{}) error {
	return c.Get(ctx, SettingKey(key), dest)
}

func (c *redisCache) SetSetting(ctx context.Context, key string, value interface{}) error {
	return c.Set(ctx, SettingKey(key), value, TTLSetting)
}

func (c *redisCache) InvalidateSetting(ctx context.Context, key string) error {
	return c.Delete(ctx, SettingKey(key))
}
