/*
Package ddb implements manifeststore.Store on AWS DynamoDB.

Manifests are stored one item per manifest in a single table:

	PK: MANIFEST#<name>
	SK: MANIFEST

Command lists are embedded in the item, and UpdatedAt is kept as an
RFC 3339 string. List scans the table filtered on the fixed sort key, so a
manifest table can be shared with other item types without interference.

The store requires a table with string PK and SK key attributes. Integration
tests run against a real table; they load credentials from the environment
(optionally via a .env file) and are guarded by the integration build tag:

	AWS_ACCESS_KEY=...
	AWS_SECRET_KEY=...
	AWS_REGION=us-east-1
	AWS_DDB_TABLE=cmdproc-manifests

	go test -tags integration ./manifeststore/ddb
*/
package ddb
