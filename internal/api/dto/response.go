package dto

// Response 统一响应包装：业务状态码、数据、给人看的消息。
type Response struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
}
