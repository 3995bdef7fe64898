package query

import "go.mongodb.org/mongo-driver/bson"

// UsersSort 用户列表排序：仅字面量 "asc" 为升序，其余一律按
// createdAt 降序。
func UsersSort(sort string) bson.D {
	dir := -1
	if sort == "asc" {
		dir = 1
	}
	return bson.D{{Key: "createdAt", Value: dir}}
}

// UsersProjection 用户列表投影，密码永不返回。
func UsersProjection() bson.D {
	return bson.D{{Key: "password", Value: 0}}
}
