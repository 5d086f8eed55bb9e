// Package redis connects to the Redis server backing the upload session cache.
//
// Connect retries the initial ping so the service can start alongside the
// cache container; Healthcheck adapts a client to the readiness probe.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
package redis
