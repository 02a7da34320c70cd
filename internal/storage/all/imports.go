// Package all registers every storage backend. Binaries blank-import it so
// the factory knows about each driver without linking them individually.
package all

import (
	_ "orderclean/internal/storage/mysql"
	_ "orderclean/internal/storage/postgres"
	_ "orderclean/internal/storage/sqlite"
)
