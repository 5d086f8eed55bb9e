// Package declared keeps the list of CSV files a user said their return
// contains. The CSV upload page only accepts files from this list.
//
// A Declaration is built from the scheme catalogue with NewDeclaration and
// saved per upload session in a Store. Three backends exist: Memory for a
// single instance and tests, Redis and Mongo for deployments running several
// instances behind a load balancer.
package declared
