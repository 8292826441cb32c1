package model

// User 仅持有一个随机访问码，前端用它标识自己的全部路线图数据。
// 访问码不是认证凭证，只是不透明的数据归属键。
// swagger:model
type User struct {
	BaseModel
	Code string `gorm:"size:16;uniqueIndex;not null" json:"code"`
}

func (User) TableName() string {
	return "users"
}
