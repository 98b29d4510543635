// Command reelhouse manages a media rental catalog and per-user ledgers from
// the command line.
//
// Each invocation locks the data directory, loads the content and accounts
// files, performs one operation, and saves on success. Who the operation acts
// for is given with --user NAME or --admin.
package main
