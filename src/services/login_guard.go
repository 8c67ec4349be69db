package services

import (
	"Backend-Props/src/database"
	"fmt"
	"log"
	"time"
)

// Redis-backed login throttling. Everything here degrades to a no-op when
// Redis is not configured.

const (
	maxLoginAttempts = 5
	loginCooldown    = 15 * time.Minute
)

func loginAttemptsKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", email)
}

// IsRateLimited reports whether an email has exhausted its login attempts.
func IsRateLimited(email string) bool {
	if database.RedisClient == nil {
		return false
	}

	count, err := database.RedisClient.Get(database.RedisCtx, loginAttemptsKey(email)).Int()
	if err != nil {
		return false
	}
	return count >= maxLoginAttempts
}

// GetRemainingCooldownTime returns how long until the email may try again.
func GetRemainingCooldownTime(email string) time.Duration {
	if database.RedisClient == nil {
		return 0
	}

	ttl, err := database.RedisClient.TTL(database.RedisCtx, loginAttemptsKey(email)).Result()
	if err != nil || ttl < 0 {
		return 0
	}
	return ttl
}

// LogLoginAttempt records the outcome of a login. Failures count toward
// the cooldown window; a success clears it.
func LogLoginAttempt(email, ip string, success bool) {
	log.Printf("[auth] login email=%s ip=%s success=%v", email, ip, success)

	if database.RedisClient == nil {
		return
	}

	key := loginAttemptsKey(email)
	if success {
		database.RedisClient.Del(database.RedisCtx, key)
		return
	}

	count, err := database.RedisClient.Incr(database.RedisCtx, key).Result()
	if err != nil {
		return
	}
	if count == 1 {
		database.RedisClient.Expire(database.RedisCtx, key, loginCooldown)
	}
}
