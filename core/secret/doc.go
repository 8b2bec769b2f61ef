// Package secret owns the single API key served to the front end.
//
// The Store keeps the key in memory behind a RWMutex and rewrites a persisted
// record on every Set. A failed write never blocks the in-memory update; it is
// reported through SetResult so the HTTP layer can tell full success from an
// in-memory-only one.
//
// # Persistence
//
// DotenvFile stores the key as one line in a dotenv file (OPENAI_API_KEY=<value>
// by default), truncating and rewriting it on each save. The file is read back with
// godotenv at startup through Store.Load.
//
// # Observers
//
// Code outside the server that needs the key gets it from the Store. For
// out-of-process consumers EnvMirror exports every new value to the environment.
//
// # Usage
//
//	store := secret.NewStore(secret.NewDotenvFile(afero.NewOsFs(), ".env", "OPENAI_API_KEY"), log)
//	_ = store.Load()
//	res := store.Set("sk-...")
//	key, err := store.Get()
package secret
