// Package redis connects to Redis with retries and exposes a health check.
//
// The returned *redis.Client backs the session store and the switch-attempt
// counters when REDIS_URL is set:
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//	if cfg.Enabled() {
//	    client, err := redis.Connect(ctx, cfg)
//	    if err != nil {
//	        return err
//	    }
//	    defer client.Close()
//	}
package redis
