package model

import (
	"tradevault/internal/model/entity"
	"tradevault/utils"
)

type PlanCreateReq struct {
	Title   string                 `json:"title" binding:"required" label:"计划标题"`
	Content map[string]interface{} `json:"content"`
}

type PlanCreateRes struct {
	PlanId int64 `json:"plan_id,string"`
}

type PlanEditReq struct {
	Title   *string                `json:"title"`
	Content map[string]interface{} `json:"content"`
}

type PlanRes struct {
	PlanId    int64                  `json:"plan_id,string"`
	Title     string                 `json:"title"`
	Content   map[string]interface{} `json:"content"`
	CreatedAt utils.JsonTime         `json:"created_at"`
	UpdatedAt utils.JsonTime         `json:"updated_at"`
}

func PlanResFrom(e entity.Plan) PlanRes {
	content := map[string]interface{}{}
	if len(e.Content) > 0 {
		_ = jsonUnmarshal(e.Content, &content)
	}
	return PlanRes{
		PlanId:    e.Id,
		Title:     e.Title,
		Content:   content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
