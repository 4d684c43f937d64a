package connection

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// BindTx returns a gorm handle whose statements run on tx, so repositories
// built on gorm join a transaction begun on the underlying *sql.DB.
func BindTx(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db
	}
	gtx := db.Session(&gorm.Session{Context: context.Background(), NewDB: true})
	gtx.Statement.ConnPool = tx
	return gtx
}
