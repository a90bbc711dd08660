/*
Package manifeststore defines the storage abstraction for command manifests.

A Store keeps manifests by name so that a fleet of tools can publish the
command surface they expose and retrieve the manifests of others. The
processor core never depends on a store; storage is strictly tooling around
the in-memory registry.

Implementations:
  - manifeststore/ddb: AWS DynamoDB-backed store
  - manifeststore/mock: in-memory mock for testing

Usage:

	store, err := ddb.New(accessKey, secretKey, region, table)
	if err != nil {
	    return err
	}

	m, err := manifest.Load("commands.yaml")
	if err != nil {
	    return err
	}
	if err := store.Put(ctx, m); err != nil {
	    return err
	}

	shared, err := store.Get(ctx, "robot-console")
*/
package manifeststore
