package config

import (
	"Recipe-Catalog-Backend/internal/utils"
	"Recipe-Catalog-Backend/pkg/notion"
	"errors"
)

func ConnectStore() (*notion.Client, error) {
	token := utils.GetConfig("NOTION_API_KEY")
	if token == "" {
		return nil, errors.New("NOTION_API_KEY is not configured")
	}
	if utils.GetConfig("NOTION_RECIPES_DB_ID") == "" || utils.GetConfig("NOTION_INGREDIENTS_DB_ID") == "" {
		return nil, errors.New("notion database ids are not configured")
	}

	return notion.NewClient(token), nil
}
