// Package mongo connects to the MongoDB deployment that can back the upload
// session cache instead of Redis.
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer db.Client().Disconnect(context.Background())
package mongo
