package model

// User represents a registered account. Users are never updated or deleted.
type User struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"type:varchar(20) COLLATE utf8mb4_bin;uniqueIndex;not null"` // Case-sensitive
	Code      string    `json:"code" gorm:"size:255;not null"`
	CreatedAt Timestamp `json:"created_at" gorm:"type:datetime(6)"`
}

// Public returns a copy safe to send to clients.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

// PublicUser is a User without its credential.
type PublicUser struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	CreatedAt Timestamp `json:"created_at"`
}
