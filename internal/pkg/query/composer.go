package query

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	DefaultPage  = 1
	DefaultLimit = 9

	// TrendingWindowDays 热门流的统计窗口（按天精确回溯）
	TrendingWindowDays = 30
)

// ListParams 帖子列表接口的全部可选查询参数，空串表示未提供。
type ListParams struct {
	UserID     string
	SearchTerm string
	Title      string
	Slug       string
	Category   string
	PostID     string
	Sort       string
	Select     string
	Page       string
	Limit      string
}

// Profile 决定分页公式。两种档位刻意不同，见 Compose。
type Profile int

const (
	// ProfilePaged getposts：skip = (page-1)*limit，带窗口元数据
	ProfilePaged Profile = iota
	// ProfileOffset getallposts：page 直接作为 skip，不应用 limit
	ProfileOffset
)

// PostQuery 组合结果：过滤、排序、投影、分页窗口，
// 以及响应需要回报的窗口元数据。
type PostQuery struct {
	Filter     bson.M
	Sort       bson.D
	Projection bson.D
	Skip       int64
	Limit      int64 // 小于 0 表示不限制

	PageNo    int
	ItemRange string // 仅 ProfilePaged："<skip+1>-<page*limit>"
}

// Compose 将一组可选参数编译为单次 Mongo 查询。
//
// 过滤规则：userId/category/slug/title 为大小写不敏感子串匹配；
// category=all 等价于不过滤；postId 为 _id 精确匹配；
// searchTerm 编译为 title/content 的 $or（原实现中该子句从未生效，
// 此处按推荐修复）。
//
// 排序沿用历史行为：字面量 "desc" 按 createdAt 升序、"asc" 按
// createdAt 降序（命名与方向相反），其余值视为字段列表，
// "-" 前缀表示降序。
func Compose(p ListParams, profile Profile) PostQuery {
	q := PostQuery{Filter: bson.M{}, Limit: -1}

	if p.UserID != "" {
		q.Filter["userId"] = regex(p.UserID)
	}
	if p.Category != "" && p.Category != "all" {
		q.Filter["category"] = regex(p.Category)
	}
	if p.Slug != "" {
		q.Filter["slug"] = regex(p.Slug)
	}
	if p.PostID != "" {
		q.Filter["_id"] = objectID(p.PostID)
	}
	if p.SearchTerm != "" {
		q.Filter["$or"] = bson.A{
			bson.M{"title": regex(p.SearchTerm)},
			bson.M{"content": regex(p.SearchTerm)},
		}
	}
	if p.Title != "" {
		q.Filter["title"] = regex(p.Title)
	}

	if p.Sort != "" {
		q.Sort = composeSort(p.Sort)
	}
	if p.Select != "" {
		q.Projection = composeProjection(p.Select)
	}

	page := atoiDefault(p.Page, DefaultPage)
	limit := atoiDefault(p.Limit, DefaultLimit)

	switch profile {
	case ProfileOffset:
		q.Skip = int64(page)
		q.PageNo = page
	default:
		skip := (page - 1) * limit
		q.Skip = int64(skip)
		q.Limit = int64(limit)
		q.PageNo = page
		q.ItemRange = fmt.Sprintf("%d-%d", skip+1, page*limit)
	}

	return q
}

func composeSort(sort string) bson.D {
	joined := strings.Join(strings.Split(sort, ","), " ")

	switch joined {
	case "desc":
		return bson.D{{Key: "createdAt", Value: 1}}
	case "asc":
		return bson.D{{Key: "createdAt", Value: -1}}
	}

	var d bson.D
	for _, field := range strings.Fields(joined) {
		if strings.HasPrefix(field, "-") {
			d = append(d, bson.E{Key: strings.TrimPrefix(field, "-"), Value: -1})
			continue
		}
		d = append(d, bson.E{Key: field, Value: 1})
	}
	return d
}

func composeProjection(sel string) bson.D {
	var d bson.D
	for _, field := range strings.Split(sel, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if strings.HasPrefix(field, "-") {
			d = append(d, bson.E{Key: strings.TrimPrefix(field, "-"), Value: 0})
			continue
		}
		d = append(d, bson.E{Key: field, Value: 1})
	}
	return d
}

// MonthAgo 上月同日零点（日历减法，非精确 30 天），
// 用于"本月新增"统计。
func MonthAgo(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month()-1, now.Day(), 0, 0, 0, 0, now.Location())
}

// TrendingSince 热门窗口起点：精确回溯 30 天。
func TrendingSince(now time.Time) time.Time {
	return now.AddDate(0, 0, -TrendingWindowDays)
}

// EngagementScore 热度得分：点赞权重 2，收藏权重 1。
func EngagementScore(likes, bookmarks int64) int64 {
	return likes*2 + bookmarks
}

// TrendingPipeline 热门流聚合：窗口过滤 → 计算 engagementScore →
// 按得分、时间降序 → 偏移分页。
func TrendingPipeline(since time.Time, skip, limit int64) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$gte": since}}}},
		{{Key: "$addFields", Value: bson.M{
			"engagementScore": bson.M{"$add": bson.A{
				bson.M{"$multiply": bson.A{"$numberOfLikes", 2}},
				"$numberOfBookmarks",
			}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "engagementScore", Value: -1},
			{Key: "createdAt", Value: -1},
		}}},
		{{Key: "$skip", Value: skip}},
		{{Key: "$limit", Value: limit}},
	}
}

// OffsetParams 解析 startIndex/limit 风格的偏移分页参数。
func OffsetParams(startIndex, limit string) (int64, int64) {
	return int64(atoiDefault(startIndex, 0)), int64(atoiDefault(limit, DefaultLimit))
}

func regex(v string) primitive.Regex {
	return primitive.Regex{Pattern: v, Options: "i"}
}

// objectID postId 无法解析为 ObjectID 时原样保留，
// 查询结果自然为空。
func objectID(v string) interface{} {
	if id, err := primitive.ObjectIDFromHex(v); err == nil {
		return id
	}
	return v
}

// atoiDefault 非法、零或负值回落到默认值，
// 对应原实现的 `+page || 1` 语义。
func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
