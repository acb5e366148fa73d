package models

type User struct {
	Id        int64  `json:"id" bson:"_id"`
	Username  string `json:"username" bson:"username"`
	Email     string `json:"email" bson:"email"`
	Password  string `json:"-" bson:"password"`
	CreatedAt string `json:"created_at" bson:"created_at"`
}
