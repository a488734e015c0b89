package dto

type ToggleFollowResp struct {
	Following bool `json:"following"`
}

type FollowUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type FollowListResp struct {
	Users []FollowUser `json:"users"`
	Count int          `json:"count"`
}

type TrendingHashtag struct {
	Tag       string `json:"tag"       bson:"_id"`
	PostCount int    `json:"postCount" bson:"postCount"`
}
