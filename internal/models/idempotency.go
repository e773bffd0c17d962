package models

import "time"

// IdempotencyKey tracks processed requests so a retried create can be replayed.
// A row with Completed false is a reservation held by an in-flight request.
type IdempotencyKey struct {
	CreatedAt      time.Time `db:"created_at"`
	Key            string    `db:"key"`
	RequestPath    string    `db:"request_path"`
	ResponseBody   string    `db:"response_body"`
	ResponseStatus int       `db:"response_status"`
	Completed      bool      `db:"completed"`
}
