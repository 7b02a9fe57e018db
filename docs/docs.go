// Package docs Swagger 文档
//
// 内容与控制器上的 swag 注释一一对应，注释变更后执行
// `swag init -g cmd/main.go -o docs` 重新生成本文件。
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/auth/login": {
            "post": {
                "summary": "用户登录",
                "tags": [
                    "Auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "description": "用户登录",
                "parameters": [
                    {
                        "description": "登录信息",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.LoginResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "summary": "获取当前用户信息",
                "tags": [
                    "Auth"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "获取当前用户信息",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.UserInfo"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/auth/refresh": {
            "post": {
                "summary": "刷新 Token",
                "tags": [
                    "Auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "description": "刷新 Token",
                "parameters": [
                    {
                        "description": "Refresh Token",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RefreshTokenRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.RefreshTokenResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/auth/register": {
            "post": {
                "summary": "注册",
                "tags": [
                    "Auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "description": "注册企业及首个用户",
                "parameters": [
                    {
                        "description": "注册信息",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RegisterRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.UserInfo"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/advertisers": {
            "get": {
                "summary": "获取卖家的广告主账号",
                "tags": [
                    "MercadoLivre-Ads"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "广告主",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/meli.Advertiser"
                            }
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/announcements": {
            "get": {
                "summary": "本地商品列表",
                "tags": [
                    "MercadoLivre-Announcement"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "本地商品列表",
                "parameters": [
                    {
                        "description": "每页数量 (1-100)",
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "type": "integer",
                        "default": 50
                    },
                    {
                        "description": "偏移",
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "type": "integer",
                        "default": 0
                    },
                    {
                        "description": "状态",
                        "name": "status",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AnnouncementListResponse"
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/announcements/{id}": {
            "get": {
                "summary": "本地商品详情",
                "tags": [
                    "MercadoLivre-Announcement"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "本地商品详情",
                "parameters": [
                    {
                        "description": "商品 ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Announcement"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/announcements/{id}/additional-info": {
            "put": {
                "summary": "更新商品成本、税费等运营字段",
                "tags": [
                    "MercadoLivre-Announcement"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "运营字段",
                "parameters": [
                    {
                        "description": "商品 ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "运营字段",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.AdditionalInfoRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Announcement"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/auth/callback": {
            "get": {
                "summary": "OAuth 公开回调",
                "tags": [
                    "MercadoLivre-Auth"
                ],
                "produces": [
                    "application/json"
                ],
                "description": "Mercado Livre 直接重定向的公开回调",
                "parameters": [
                    {
                        "description": "授权码",
                        "name": "code",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "company_{id}_{nonce}",
                        "name": "state",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.IntegrationInfo"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/authorization-url": {
            "get": {
                "summary": "获取 Mercado Livre 授权链接",
                "tags": [
                    "MercadoLivre-Auth"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "获取授权链接",
                "parameters": [
                    {
                        "description": "回调地址，默认使用配置",
                        "name": "redirect_uri",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AuthorizationURLResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/callback": {
            "post": {
                "summary": "提交授权码完成授权",
                "tags": [
                    "MercadoLivre-Auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "前端回传授权码",
                "parameters": [
                    {
                        "description": "授权码",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CallbackRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.IntegrationInfo"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/catalog-competitors/db/{product_id}": {
            "get": {
                "summary": "本地竞品列表（按价格升序）",
                "tags": [
                    "MercadoLivre-Competitor"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "本地竞品",
                "parameters": [
                    {
                        "description": "目录商品 ID",
                        "name": "product_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.CatalogCompetitor"
                            }
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/catalog-competitors/sync/{product_id}": {
            "post": {
                "summary": "同步目录商品竞品，移除已下架的竞品",
                "tags": [
                    "MercadoLivre-Competitor"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "同步竞品",
                "parameters": [
                    {
                        "description": "目录商品 ID",
                        "name": "product_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "上游返回空列表时是否清空本地",
                        "name": "allow_empty",
                        "in": "query",
                        "required": false,
                        "type": "boolean"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CompetitorSyncResult"
                        }
                    },
                    "429": {
                        "description": "限流中",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/catalog-competitors/{id}": {
            "get": {
                "summary": "实时获取目录商品竞品（按价格升序，不落库）",
                "tags": [
                    "MercadoLivre-Competitor"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "实时竞品",
                "parameters": [
                    {
                        "description": "目录商品 ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.LiveCompetitorsResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/catalog-competitors/{id}/manual-url": {
            "put": {
                "summary": "更新竞品手工链接，空值清除",
                "tags": [
                    "MercadoLivre-Competitor"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "手工链接",
                "parameters": [
                    {
                        "description": "竞品商品 ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "链接",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ManualURLRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.CatalogCompetitor"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/categories": {
            "get": {
                "summary": "站点顶级类目",
                "tags": [
                    "MercadoLivre-Product"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "站点类目",
                "parameters": [
                    {
                        "description": "站点",
                        "name": "site_id",
                        "in": "query",
                        "required": false,
                        "type": "string",
                        "default": "MLB"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/meli.CategoryRef"
                            }
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/categories/{id}": {
            "get": {
                "summary": "类目详情及属性",
                "tags": [
                    "MercadoLivre-Product"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "类目详情",
                "parameters": [
                    {
                        "description": "类目 ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.CategoryDetail"
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/disconnect": {
            "delete": {
                "summary": "断开 Mercado Livre 连接",
                "tags": [
                    "MercadoLivre-Auth"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "断开连接",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/item-costs/{id}": {
            "get": {
                "summary": "获取商品刊登费用，接口失败时返回估算值",
                "tags": [
                    "MercadoLivre-Product"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "刊登费用",
                "parameters": [
                    {
                        "description": "商品 ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ItemCostsResponse"
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/item-details/{id}": {
            "get": {
                "summary": "获取任意商品详情",
                "tags": [
                    "MercadoLivre-Product"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "任意商品详情，公开商品无需授权",
                "parameters": [
                    {
                        "description": "商品 ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/notifications/callback": {
            "post": {
                "summary": "接收 Mercado Livre 通知",
                "tags": [
                    "MercadoLivre-Auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "description": "Mercado Livre webhook，仅记录并确认",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/orders/db": {
            "get": {
                "summary": "本地订单列表（按下单时间倒序）",
                "tags": [
                    "MercadoLivre-Order"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "本地订单",
                "parameters": [
                    {
                        "description": "订单状态",
                        "name": "status",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "开始日期 YYYY-MM-DD",
                        "name": "date_from",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "结束日期 YYYY-MM-DD（含当天）",
                        "name": "date_to",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "每页数量 (1-200)",
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "type": "integer",
                        "default": 50
                    },
                    {
                        "description": "偏移",
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "type": "integer",
                        "default": 0
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.StoredOrdersResponse"
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/orders/search": {
            "get": {
                "summary": "实时搜索卖家订单",
                "tags": [
                    "MercadoLivre-Order"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "实时订单搜索",
                "parameters": [
                    {
                        "description": "订单状态",
                        "name": "status",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "开始日期 YYYY-MM-DD",
                        "name": "date_from",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "结束日期 YYYY-MM-DD",
                        "name": "date_to",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "每页数量 (1-51)",
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "type": "integer",
                        "default": 50
                    },
                    {
                        "description": "偏移",
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "type": "integer",
                        "default": 0
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/meli.OrderSearchResponse"
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/orders/sync": {
            "post": {
                "summary": "同步订单，已存在的订单不重复拉取详情",
                "tags": [
                    "MercadoLivre-Order"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "同步订单",
                "parameters": [
                    {
                        "description": "刷新已存在订单状态",
                        "name": "refresh_existing",
                        "in": "query",
                        "required": false,
                        "type": "boolean"
                    },
                    {
                        "description": "订单状态",
                        "name": "status",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "开始日期 YYYY-MM-DD",
                        "name": "date_from",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "结束日期 YYYY-MM-DD",
                        "name": "date_to",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.OrderSyncResult"
                        }
                    },
                    "429": {
                        "description": "限流中",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/orders/{order_id}": {
            "get": {
                "summary": "本地订单详情",
                "tags": [
                    "MercadoLivre-Order"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "本地订单详情",
                "parameters": [
                    {
                        "description": "订单 ID",
                        "name": "order_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.MeliOrder"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/product-ads/db/{item_id}": {
            "get": {
                "summary": "本地广告指标",
                "tags": [
                    "MercadoLivre-Ads"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "本地广告指标",
                "parameters": [
                    {
                        "description": "商品 ID",
                        "name": "item_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "统计窗口",
                        "name": "period_days",
                        "in": "query",
                        "required": false,
                        "type": "integer",
                        "default": 15
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.StoredAdsResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/product-ads/items/{item_id}": {
            "get": {
                "summary": "实时获取商品广告详情",
                "tags": [
                    "MercadoLivre-Ads"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "实时广告详情",
                "parameters": [
                    {
                        "description": "商品 ID",
                        "name": "item_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ProductAdDetail"
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/product-ads/sync/{item_id}": {
            "post": {
                "summary": "同步商品 7/15/30/60/90 天广告指标",
                "tags": [
                    "MercadoLivre-Ads"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "同步广告指标",
                "parameters": [
                    {
                        "description": "商品 ID",
                        "name": "item_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AdsSyncResult"
                        }
                    },
                    "429": {
                        "description": "限流中",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/products": {
            "get": {
                "summary": "实时获取卖家商品（含促销价与目录位置）",
                "tags": [
                    "MercadoLivre-Product"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "卖家商品列表",
                "parameters": [
                    {
                        "description": "每页数量",
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "type": "integer",
                        "default": 50
                    },
                    {
                        "description": "偏移",
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "type": "integer",
                        "default": 0
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ProductListResponse"
                        }
                    }
                }
            },
            "post": {
                "summary": "在 Mercado Livre 创建商品",
                "tags": [
                    "MercadoLivre-Product"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "创建商品",
                "parameters": [
                    {
                        "description": "商品信息",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateProductReq"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/products/{id}": {
            "get": {
                "summary": "实时获取商品详情",
                "tags": [
                    "MercadoLivre-Product"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "商品详情",
                "parameters": [
                    {
                        "description": "商品 ID (MLB...)",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            },
            "put": {
                "summary": "更新商品（白名单字段）",
                "tags": [
                    "MercadoLivre-Product"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "更新商品",
                "parameters": [
                    {
                        "description": "商品 ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "更新字段",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateProductReq"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            },
            "delete": {
                "summary": "暂停商品，暂停失败时删除",
                "tags": [
                    "MercadoLivre-Product"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "删除商品（优先暂停）",
                "parameters": [
                    {
                        "description": "商品 ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.DeleteProductResponse"
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/refresh": {
            "post": {
                "summary": "手动刷新 token",
                "tags": [
                    "MercadoLivre-Auth"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "手动刷新 token",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.IntegrationInfo"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/status": {
            "get": {
                "summary": "查询连接状态",
                "tags": [
                    "MercadoLivre-Auth"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "连接状态",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.IntegrationStatusResponse"
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/sync-announcements": {
            "post": {
                "summary": "从 Mercado Livre 同步商品",
                "tags": [
                    "MercadoLivre-Announcement"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "同步卖家全部商品",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SyncAnnouncementsResult"
                        }
                    },
                    "429": {
                        "description": "限流中",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/mercado-livre/test-connection": {
            "get": {
                "summary": "使用当前 token 调用 users/me",
                "tags": [
                    "MercadoLivre-Auth"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "测试连接",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.TestConnectionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/users/company": {
            "put": {
                "summary": "修改企业名称 / CNPJ",
                "tags": [
                    "User"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "修改企业信息",
                "parameters": [
                    {
                        "description": "企业信息",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateCompanyRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CompanyInfo"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/users/me": {
            "get": {
                "summary": "获取当前用户信息",
                "tags": [
                    "Auth"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "获取当前用户信息",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.UserInfo"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            },
            "put": {
                "summary": "修改当前用户姓名",
                "tags": [
                    "User"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "修改姓名",
                "parameters": [
                    {
                        "description": "用户信息",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateProfileRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.UserInfo"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.AdditionalInfoRequest": {
            "type": "object",
            "properties": {
                "additional_fees": {
                    "type": "string"
                },
                "additional_notes": {
                    "type": "string"
                },
                "ads_cost": {
                    "type": "string"
                },
                "product_cost": {
                    "type": "number"
                },
                "shipping_cost": {
                    "type": "number"
                },
                "taxes": {
                    "type": "string"
                }
            }
        },
        "dto.AdsSyncResult": {
            "type": "object",
            "properties": {
                "advertiser_id": {
                    "type": "string"
                },
                "errors": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "item_id": {
                    "type": "string"
                },
                "periods_failed": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "periods_synced": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "site_id": {
                    "type": "string"
                }
            }
        },
        "dto.AnnouncementListResponse": {
            "type": "object",
            "properties": {
                "limit": {
                    "type": "integer"
                },
                "list": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.Announcement"
                    }
                },
                "offset": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "dto.AuthorizationURLResponse": {
            "type": "object",
            "properties": {
                "authorization_url": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                }
            }
        },
        "dto.CallbackRequest": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "redirect_uri": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                }
            },
            "required": [
                "code"
            ]
        },
        "dto.CompanyInfo": {
            "type": "object",
            "properties": {
                "cnpj": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "dto.CompetitorItem": {
            "type": "object",
            "properties": {
                "url": {
                    "type": "string"
                }
            }
        },
        "dto.CompetitorSyncResult": {
            "type": "object",
            "properties": {
                "catalog_product_id": {
                    "type": "string"
                },
                "guarded": {
                    "type": "boolean"
                },
                "not_found": {
                    "type": "boolean"
                },
                "removed": {
                    "type": "integer"
                },
                "synced": {
                    "type": "integer"
                },
                "total_current": {
                    "type": "integer"
                }
            }
        },
        "dto.CreateProductReq": {
            "type": "object",
            "properties": {
                "attributes": {
                    "type": "object"
                },
                "available_quantity": {
                    "type": "integer"
                },
                "buying_mode": {
                    "type": "string"
                },
                "category_id": {
                    "type": "string"
                },
                "condition": {
                    "type": "string"
                },
                "currency_id": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "listing_type_id": {
                    "type": "string"
                },
                "pictures": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "price": {
                    "type": "number"
                },
                "title": {
                    "type": "string"
                }
            },
            "required": [
                "title",
                "category_id",
                "price",
                "available_quantity"
            ]
        },
        "dto.DeleteProductResponse": {
            "type": "object",
            "properties": {
                "action": {
                    "type": "string",
                    "description": "paused / deleted"
                },
                "product_id": {
                    "type": "string"
                }
            }
        },
        "dto.IntegrationInfo": {
            "type": "object",
            "properties": {
                "company_id": {
                    "type": "integer"
                },
                "expires_at": {
                    "type": "string"
                },
                "expires_in": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                },
                "is_active": {
                    "type": "boolean"
                },
                "scope": {
                    "type": "string"
                },
                "token_type": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "user_id": {
                    "type": "string"
                }
            }
        },
        "dto.IntegrationStatusResponse": {
            "type": "object",
            "properties": {
                "connected": {
                    "type": "boolean"
                },
                "expires_at": {
                    "type": "string"
                },
                "is_active": {
                    "type": "boolean"
                },
                "message": {
                    "type": "string"
                },
                "nickname": {
                    "type": "string"
                },
                "token_valid": {
                    "type": "boolean"
                },
                "user_id": {
                    "type": "string"
                }
            }
        },
        "dto.ItemCostsResponse": {
            "type": "object",
            "properties": {
                "category_id": {
                    "type": "string"
                },
                "currency_id": {
                    "type": "string"
                },
                "estimated": {
                    "type": "boolean"
                },
                "item_id": {
                    "type": "string"
                },
                "listing_fee_amount": {
                    "type": "number"
                },
                "listing_type_id": {
                    "type": "string"
                },
                "listing_type_name": {
                    "type": "string"
                },
                "price": {
                    "type": "number"
                },
                "sale_fee_amount": {
                    "type": "number"
                },
                "sale_fee_percentage": {
                    "type": "object"
                },
                "total_cost": {
                    "type": "number"
                }
            }
        },
        "dto.LiveCompetitorsResponse": {
            "type": "object",
            "properties": {
                "catalog_product_id": {
                    "type": "string"
                },
                "results": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.CompetitorItem"
                    }
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            },
            "required": [
                "email",
                "password"
            ]
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {
                "access_token": {
                    "type": "string"
                },
                "expires_at": {
                    "type": "string"
                },
                "refresh_token": {
                    "type": "string"
                },
                "token_type": {
                    "type": "string"
                },
                "user": {
                    "$ref": "#/definitions/dto.UserInfo"
                }
            }
        },
        "dto.ManualURLRequest": {
            "type": "object",
            "properties": {
                "manual_url": {
                    "type": "string"
                }
            }
        },
        "dto.OrderSyncResult": {
            "type": "object",
            "properties": {
                "errors": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "skipped": {
                    "type": "integer"
                },
                "synced": {
                    "type": "integer"
                },
                "total_found": {
                    "type": "integer"
                },
                "total_processed": {
                    "type": "integer"
                },
                "updated": {
                    "type": "integer"
                }
            }
        },
        "dto.ProductAdDetail": {
            "type": "object",
            "properties": {
                "ads_data": {
                    "type": "object"
                },
                "advertiser_id": {
                    "type": "string"
                },
                "item_id": {
                    "type": "string"
                },
                "site_id": {
                    "type": "string"
                }
            }
        },
        "dto.ProductListResponse": {
            "type": "object",
            "properties": {
                "limit": {
                    "type": "integer"
                },
                "offset": {
                    "type": "integer"
                },
                "results": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ProductSummary"
                    }
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "dto.ProductSummary": {
            "type": "object",
            "properties": {
                "available_quantity": {
                    "type": "integer"
                },
                "catalog_listing": {
                    "type": "boolean"
                },
                "catalog_product_id": {
                    "type": "string"
                },
                "catalog_status": {
                    "type": "string"
                },
                "category_id": {
                    "type": "string"
                },
                "condition": {
                    "type": "string"
                },
                "currency_id": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "listing_type_id": {
                    "type": "string"
                },
                "original_price": {
                    "type": "object"
                },
                "permalink": {
                    "type": "string"
                },
                "price": {
                    "type": "number"
                },
                "price_to_win": {
                    "type": "object"
                },
                "sale_price": {
                    "type": "object"
                },
                "sold_quantity": {
                    "type": "integer"
                },
                "status": {
                    "type": "string"
                },
                "thumbnail": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                }
            }
        },
        "dto.RefreshTokenRequest": {
            "type": "object",
            "properties": {
                "refresh_token": {
                    "type": "string"
                }
            },
            "required": [
                "refresh_token"
            ]
        },
        "dto.RefreshTokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {
                    "type": "string"
                },
                "expires_at": {
                    "type": "string"
                },
                "refresh_token": {
                    "type": "string"
                },
                "token_type": {
                    "type": "string"
                }
            }
        },
        "dto.RegisterRequest": {
            "type": "object",
            "properties": {
                "cnpj": {
                    "type": "string"
                },
                "company_name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            },
            "required": [
                "name",
                "email",
                "password",
                "company_name",
                "cnpj"
            ]
        },
        "dto.StoredAdsResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/model.ProductAdsData"
                },
                "item_id": {
                    "type": "string"
                },
                "period_days": {
                    "type": "integer"
                },
                "periods": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            }
        },
        "dto.StoredOrdersResponse": {
            "type": "object",
            "properties": {
                "has_more": {
                    "type": "boolean"
                },
                "limit": {
                    "type": "integer"
                },
                "list": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.MeliOrder"
                    }
                },
                "offset": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "dto.SyncAnnouncementsResult": {
            "type": "object",
            "properties": {
                "errors": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "synced": {
                    "type": "integer"
                },
                "total_found": {
                    "type": "integer"
                },
                "total_processed": {
                    "type": "integer"
                },
                "unchanged": {
                    "type": "integer"
                },
                "updated": {
                    "type": "integer"
                }
            }
        },
        "dto.TestConnectionResponse": {
            "type": "object",
            "properties": {
                "connected": {
                    "type": "boolean"
                },
                "email": {
                    "type": "string"
                },
                "nickname": {
                    "type": "string"
                },
                "site_id": {
                    "type": "string"
                },
                "user_id": {
                    "type": "string"
                }
            }
        },
        "dto.UpdateCompanyRequest": {
            "type": "object",
            "properties": {
                "cnpj": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "dto.UpdateProductReq": {
            "type": "object",
            "properties": {
                "attributes": {
                    "type": "object"
                },
                "available_quantity": {
                    "type": "integer"
                },
                "condition": {
                    "type": "string"
                },
                "pictures": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "price": {
                    "type": "number"
                },
                "status": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                }
            }
        },
        "dto.UpdateProfileRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                }
            },
            "required": [
                "name"
            ]
        },
        "dto.UserInfo": {
            "type": "object",
            "properties": {
                "company": {
                    "$ref": "#/definitions/dto.CompanyInfo"
                },
                "company_id": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "is_active": {
                    "type": "boolean"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "meli.Address": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "zip_code": {
                    "type": "string"
                }
            }
        },
        "meli.Advertiser": {
            "type": "object",
            "properties": {
                "account_name": {
                    "type": "string"
                },
                "advertiser_id": {
                    "type": "string"
                },
                "advertiser_name": {
                    "type": "string"
                },
                "site_id": {
                    "type": "string"
                }
            }
        },
        "meli.AttributeValue": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "meli.CategoryAttribute": {
            "type": "object",
            "properties": {
                "hierarchy": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "tags": {
                    "type": "object"
                },
                "value_type": {
                    "type": "string"
                },
                "values": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/meli.AttributeValue"
                    }
                }
            }
        },
        "meli.CategoryRef": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "total_items_in_this_category": {
                    "type": "integer"
                }
            }
        },
        "meli.FeedbackEntry": {
            "type": "object",
            "properties": {
                "fulfilled": {
                    "type": "boolean"
                },
                "rating": {
                    "type": "string"
                }
            }
        },
        "meli.Identification": {
            "type": "object",
            "properties": {
                "number": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                }
            }
        },
        "meli.Order": {
            "type": "object",
            "properties": {
                "buyer": {
                    "$ref": "#/definitions/meli.OrderParty"
                },
                "comment": {
                    "type": "string"
                },
                "currency_id": {
                    "type": "string"
                },
                "date_closed": {
                    "type": "string"
                },
                "date_created": {
                    "type": "string"
                },
                "date_last_updated": {
                    "type": "string"
                },
                "feedback": {
                    "$ref": "#/definitions/meli.OrderFeedback"
                },
                "fulfilled": {
                    "type": "boolean"
                },
                "id": {
                    "type": "string"
                },
                "order_items": {
                    "type": "object"
                },
                "pack_id": {
                    "type": "string"
                },
                "paid_amount": {
                    "type": "object"
                },
                "payments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/meli.OrderPayment"
                    }
                },
                "pickup_id": {
                    "type": "string"
                },
                "seller": {
                    "$ref": "#/definitions/meli.OrderParty"
                },
                "shipping": {
                    "$ref": "#/definitions/meli.OrderShipping"
                },
                "status": {
                    "type": "string"
                },
                "status_detail": {
                    "$ref": "#/definitions/meli.OrderStatusDetail"
                },
                "tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "total_amount": {
                    "type": "number"
                }
            }
        },
        "meli.OrderFeedback": {
            "type": "object",
            "properties": {
                "purchase": {
                    "$ref": "#/definitions/meli.FeedbackEntry"
                },
                "sale": {
                    "$ref": "#/definitions/meli.FeedbackEntry"
                }
            }
        },
        "meli.OrderParty": {
            "type": "object",
            "properties": {
                "address": {
                    "$ref": "#/definitions/meli.Address"
                },
                "alternative_phone": {
                    "$ref": "#/definitions/meli.Phone"
                },
                "country_id": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "first_name": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "identification": {
                    "$ref": "#/definitions/meli.Identification"
                },
                "last_name": {
                    "type": "string"
                },
                "nickname": {
                    "type": "string"
                },
                "permalink": {
                    "type": "string"
                },
                "phone": {
                    "$ref": "#/definitions/meli.Phone"
                },
                "registration_date": {
                    "type": "string"
                },
                "site_id": {
                    "type": "string"
                },
                "user_type": {
                    "type": "string"
                }
            }
        },
        "meli.OrderPayment": {
            "type": "object",
            "properties": {
                "Collector": {
                    "type": "string"
                },
                "authorization_code": {
                    "type": "string"
                },
                "card_id": {
                    "type": "string"
                },
                "coupon_amount": {
                    "type": "object"
                },
                "date_approved": {
                    "type": "string"
                },
                "date_last_modified": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "installment_amount": {
                    "type": "object"
                },
                "installments": {
                    "type": "integer"
                },
                "issuer_id": {
                    "type": "string"
                },
                "operation_type": {
                    "type": "string"
                },
                "overpaid_amount": {
                    "type": "object"
                },
                "payment_method_id": {
                    "type": "string"
                },
                "payment_type": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "status_code": {
                    "type": "string"
                },
                "status_detail": {
                    "type": "string"
                },
                "taxes_amount": {
                    "type": "object"
                },
                "transaction_amount": {
                    "type": "object"
                },
                "transaction_amount_refunded": {
                    "type": "object"
                },
                "transaction_order_id": {
                    "type": "string"
                }
            }
        },
        "meli.OrderSearchResponse": {
            "type": "object",
            "properties": {
                "paging": {
                    "$ref": "#/definitions/meli.Paging"
                },
                "results": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/meli.Order"
                    }
                }
            }
        },
        "meli.OrderShipping": {
            "type": "object",
            "properties": {
                "cost": {
                    "type": "object"
                },
                "declared_value": {
                    "type": "object"
                },
                "id": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "substatus": {
                    "type": "string"
                },
                "tracking_method": {
                    "type": "string"
                },
                "tracking_number": {
                    "type": "string"
                }
            }
        },
        "meli.OrderStatusDetail": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "meli.Paging": {
            "type": "object",
            "properties": {
                "limit": {
                    "type": "integer"
                },
                "offset": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "meli.Phone": {
            "type": "object",
            "properties": {
                "area_code": {
                    "type": "string"
                },
                "number": {
                    "type": "string"
                }
            }
        },
        "model.Announcement": {
            "type": "object",
            "properties": {
                "additional_fees": {
                    "type": "string"
                },
                "additional_notes": {
                    "type": "string"
                },
                "ads_cost": {
                    "type": "string"
                },
                "available_quantity": {
                    "type": "integer"
                },
                "base_price": {
                    "type": "object"
                },
                "catalog_competitors_sharing": {
                    "type": "integer"
                },
                "catalog_listing": {
                    "type": "boolean"
                },
                "catalog_price_to_win": {
                    "type": "object"
                },
                "catalog_product_id": {
                    "type": "string"
                },
                "catalog_status": {
                    "type": "string"
                },
                "catalog_visit_share": {
                    "type": "string"
                },
                "category_id": {
                    "type": "string"
                },
                "company_id": {
                    "type": "integer"
                },
                "condition": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "created_by": {
                    "type": "integer"
                },
                "currency_id": {
                    "type": "string"
                },
                "domain_id": {
                    "type": "string"
                },
                "family_id": {
                    "type": "string"
                },
                "family_name": {
                    "type": "string"
                },
                "free_relist": {
                    "type": "boolean"
                },
                "id": {
                    "type": "integer"
                },
                "inventory_id": {
                    "type": "string"
                },
                "listing_exposure": {
                    "type": "string"
                },
                "listing_fee_amount": {
                    "type": "object"
                },
                "listing_type_id": {
                    "type": "string"
                },
                "listing_type_name": {
                    "type": "string"
                },
                "ml_date_created": {
                    "type": "string"
                },
                "ml_item_id": {
                    "type": "string"
                },
                "ml_last_updated": {
                    "type": "string"
                },
                "original_price": {
                    "type": "object"
                },
                "permalink": {
                    "type": "string"
                },
                "price": {
                    "type": "number"
                },
                "product_cost": {
                    "type": "object"
                },
                "requires_picture": {
                    "type": "boolean"
                },
                "sale_fee_amount": {
                    "type": "object"
                },
                "sale_fee_fixed": {
                    "type": "object"
                },
                "sale_fee_percentage": {
                    "type": "object"
                },
                "sale_price": {
                    "type": "object"
                },
                "shipping_cost": {
                    "type": "object"
                },
                "site_id": {
                    "type": "string"
                },
                "sold_quantity": {
                    "type": "integer"
                },
                "status": {
                    "type": "string"
                },
                "tags": {
                    "type": "object"
                },
                "taxes": {
                    "type": "string"
                },
                "thumbnail": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "total_cost": {
                    "type": "object"
                },
                "updated_at": {
                    "type": "string"
                },
                "updated_by": {
                    "type": "integer"
                },
                "user_product_id": {
                    "type": "string"
                }
            }
        },
        "model.CatalogCompetitor": {
            "type": "object",
            "properties": {
                "available_quantity": {
                    "type": "integer"
                },
                "catalog_product_id": {
                    "type": "string"
                },
                "company_id": {
                    "type": "integer"
                },
                "condition": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "deal_ids": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "id": {
                    "type": "integer"
                },
                "item_id": {
                    "type": "string"
                },
                "listing_type_id": {
                    "type": "string"
                },
                "manual_url": {
                    "type": "string"
                },
                "ml_date_created": {
                    "type": "string"
                },
                "ml_last_updated": {
                    "type": "string"
                },
                "original_price": {
                    "type": "object"
                },
                "permalink": {
                    "type": "string"
                },
                "price": {
                    "type": "number"
                },
                "seller_id": {
                    "type": "string"
                },
                "seller_nickname": {
                    "type": "string"
                },
                "seller_power_status": {
                    "type": "string"
                },
                "seller_reputation_level": {
                    "type": "string"
                },
                "seller_transactions_total": {
                    "type": "integer"
                },
                "shipping_free": {
                    "type": "boolean"
                },
                "shipping_logistic_type": {
                    "type": "string"
                },
                "shipping_mode": {
                    "type": "string"
                },
                "shipping_tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "sold_quantity": {
                    "type": "integer"
                },
                "tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "title": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                }
            }
        },
        "model.MeliOrder": {
            "type": "object",
            "properties": {
                "buyer_address_address": {
                    "type": "string"
                },
                "buyer_address_city": {
                    "type": "string"
                },
                "buyer_address_state": {
                    "type": "string"
                },
                "buyer_address_zip_code": {
                    "type": "string"
                },
                "buyer_alternative_phone": {
                    "type": "string"
                },
                "buyer_country_id": {
                    "type": "string"
                },
                "buyer_email": {
                    "type": "string"
                },
                "buyer_first_name": {
                    "type": "string"
                },
                "buyer_id": {
                    "type": "string"
                },
                "buyer_identification_number": {
                    "type": "string"
                },
                "buyer_identification_type": {
                    "type": "string"
                },
                "buyer_last_name": {
                    "type": "string"
                },
                "buyer_nickname": {
                    "type": "string"
                },
                "buyer_permalink": {
                    "type": "string"
                },
                "buyer_phone": {
                    "type": "string"
                },
                "buyer_registration_date": {
                    "type": "string"
                },
                "buyer_site_id": {
                    "type": "string"
                },
                "buyer_user_type": {
                    "type": "string"
                },
                "comment": {
                    "type": "string"
                },
                "company_id": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string"
                },
                "currency_id": {
                    "type": "string"
                },
                "date_closed": {
                    "type": "string"
                },
                "date_created": {
                    "type": "string"
                },
                "date_last_updated": {
                    "type": "string"
                },
                "feedback_purchase_fulfilled": {
                    "type": "boolean"
                },
                "feedback_purchase_rating": {
                    "type": "string"
                },
                "feedback_sale_fulfilled": {
                    "type": "boolean"
                },
                "feedback_sale_rating": {
                    "type": "string"
                },
                "fulfilled": {
                    "type": "boolean"
                },
                "id": {
                    "type": "integer"
                },
                "ml_date_created": {
                    "type": "string"
                },
                "ml_last_updated": {
                    "type": "string"
                },
                "order_id": {
                    "type": "string"
                },
                "order_items": {
                    "type": "object"
                },
                "pack_id": {
                    "type": "string"
                },
                "paid_amount": {
                    "type": "object"
                },
                "payment_coupon_amount": {
                    "type": "object"
                },
                "payment_date_approved": {
                    "type": "string"
                },
                "payment_date_last_modified": {
                    "type": "string"
                },
                "payment_id": {
                    "type": "string"
                },
                "payment_installment_amount": {
                    "type": "object"
                },
                "payment_installments": {
                    "type": "integer"
                },
                "payment_method_id": {
                    "type": "string"
                },
                "payment_operation_type": {
                    "type": "string"
                },
                "payment_status": {
                    "type": "string"
                },
                "payment_status_detail": {
                    "type": "string"
                },
                "payment_taxes_amount": {
                    "type": "object"
                },
                "payment_transaction_amount": {
                    "type": "object"
                },
                "payment_transaction_amount_refunded": {
                    "type": "object"
                },
                "payment_type": {
                    "type": "string"
                },
                "pickup_id": {
                    "type": "string"
                },
                "seller_email": {
                    "type": "string"
                },
                "seller_id": {
                    "type": "string"
                },
                "seller_nickname": {
                    "type": "string"
                },
                "seller_phone": {
                    "type": "string"
                },
                "shipping_cost": {
                    "type": "object"
                },
                "shipping_declared_value": {
                    "type": "object"
                },
                "shipping_id": {
                    "type": "string"
                },
                "shipping_status": {
                    "type": "string"
                },
                "shipping_substatus": {
                    "type": "string"
                },
                "shipping_tracking_method": {
                    "type": "string"
                },
                "shipping_tracking_number": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "status_detail": {
                    "type": "string"
                },
                "tags": {
                    "type": "object"
                },
                "total_amount": {
                    "type": "number"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "model.ProductAdsData": {
            "type": "object",
            "properties": {
                "acos": {
                    "type": "number"
                },
                "advertiser_id": {
                    "type": "string"
                },
                "advertising_items_quantity": {
                    "type": "integer"
                },
                "campaign_id": {
                    "type": "string"
                },
                "clicks": {
                    "type": "integer"
                },
                "company_id": {
                    "type": "integer"
                },
                "cost": {
                    "type": "number"
                },
                "cpc": {
                    "type": "number"
                },
                "created_at": {
                    "type": "string"
                },
                "ctr": {
                    "type": "number"
                },
                "cvr": {
                    "type": "number"
                },
                "data_period_end": {
                    "type": "string"
                },
                "data_period_start": {
                    "type": "string"
                },
                "direct_amount": {
                    "type": "number"
                },
                "direct_items_quantity": {
                    "type": "integer"
                },
                "direct_units_quantity": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                },
                "indirect_amount": {
                    "type": "number"
                },
                "indirect_items_quantity": {
                    "type": "integer"
                },
                "indirect_units_quantity": {
                    "type": "integer"
                },
                "ml_item_id": {
                    "type": "string"
                },
                "organic_items_quantity": {
                    "type": "integer"
                },
                "organic_units_amount": {
                    "type": "number"
                },
                "organic_units_quantity": {
                    "type": "integer"
                },
                "period_days": {
                    "type": "integer"
                },
                "price": {
                    "type": "object"
                },
                "prints": {
                    "type": "integer"
                },
                "roas": {
                    "type": "number"
                },
                "site_id": {
                    "type": "string"
                },
                "sov": {
                    "type": "number"
                },
                "status": {
                    "type": "string"
                },
                "tacos": {
                    "type": "number"
                },
                "title": {
                    "type": "string"
                },
                "total_amount": {
                    "type": "number"
                },
                "units_quantity": {
                    "type": "integer"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "service.CategoryDetail": {
            "type": "object",
            "properties": {
                "attributes": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/meli.CategoryAttribute"
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Bearer {access_token}",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Mercado Livre Hub API",
	Description:      "Mercado Livre 多企业卖家后台：授权、商品、竞品、广告与订单同步",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
