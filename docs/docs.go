// Package docs holds the OpenAPI description served by gin-swagger. Keep it in
// step with the handler annotations.
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
		"/auth/register": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Auth"
				],
				"summary": "Register a new user",
				"parameters": [
					{
						"description": "User data",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.RegisterRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.TokenResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/login": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Auth"
				],
				"summary": "Log in with email and password",
				"parameters": [
					{
						"description": "Credentials",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.LoginRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.TokenResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/refresh": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Auth"
				],
				"summary": "Exchange the refresh cookie for a new token pair",
				"parameters": [],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.TokenResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/users/{userId}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Users"
				],
				"summary": "Get the authenticated user",
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.User"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Users"
				],
				"summary": "Update the authenticated user",
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"description": "Fields to change",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.UpdateUserRequest"
						}
					}
				],
				"description": "Only the fields present in the body are changed.",
				"consumes": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.User"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Users"
				],
				"summary": "Delete the authenticated user with all columns, cards and comments",
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users/{userId}/columns": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Columns"
				],
				"summary": "Create a column",
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"description": "Column",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.ColumnRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/model.Column"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Columns"
				],
				"summary": "List the user's columns",
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"default": 1,
						"description": "Page number",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"default": 10,
						"description": "Page size",
						"name": "take",
						"in": "query"
					},
					{
						"enum": [
							"ASC",
							"DESC"
						],
						"type": "string",
						"description": "Sort order",
						"name": "order",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/pagination.Page-model_Column"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users/{userId}/columns/{columnId}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Columns"
				],
				"summary": "Get a column",
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Column ID",
						"name": "columnId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.Column"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Columns"
				],
				"summary": "Update a column",
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Column ID",
						"name": "columnId",
						"in": "path",
						"required": true
					},
					{
						"description": "Fields to change",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.UpdateColumnRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.Column"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Columns"
				],
				"summary": "Delete a column with its cards and comments",
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Column ID",
						"name": "columnId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users/{userId}/columns/{columnId}/cards": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Cards"
				],
				"summary": "Create a card in a column",
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Column ID",
						"name": "columnId",
						"in": "path",
						"required": true
					},
					{
						"description": "Card",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.CreateCardRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/model.Card"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Cards"
				],
				"summary": "List the cards of a column",
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Column ID",
						"name": "columnId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"default": 1,
						"description": "Page number",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"default": 10,
						"description": "Page size",
						"name": "take",
						"in": "query"
					},
					{
						"enum": [
							"ASC",
							"DESC"
						],
						"type": "string",
						"description": "Sort order",
						"name": "order",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/pagination.Page-model_Card"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users/{userId}/columns/{columnId}/cards/{cardId}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Cards"
				],
				"summary": "Get a card",
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Column ID",
						"name": "columnId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Card ID",
						"name": "cardId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.Card"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Cards"
				],
				"summary": "Update a card",
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Column ID",
						"name": "columnId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Card ID",
						"name": "cardId",
						"in": "path",
						"required": true
					},
					{
						"description": "Fields to change",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.UpdateCardRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.Card"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Cards"
				],
				"summary": "Delete a card with its comments",
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Column ID",
						"name": "columnId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Card ID",
						"name": "cardId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users/{userId}/columns/{columnId}/cards/{cardId}/comments": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Comments"
				],
				"summary": "Comment on a card",
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Column ID",
						"name": "columnId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Card ID",
						"name": "cardId",
						"in": "path",
						"required": true
					},
					{
						"description": "Comment",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.CommentRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/model.Comment"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Comments"
				],
				"summary": "List the comments of a card",
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Column ID",
						"name": "columnId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Card ID",
						"name": "cardId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"default": 1,
						"description": "Page number",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"default": 10,
						"description": "Page size",
						"name": "take",
						"in": "query"
					},
					{
						"enum": [
							"ASC",
							"DESC"
						],
						"type": "string",
						"description": "Sort order",
						"name": "order",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/pagination.Page-model_Comment"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users/{userId}/columns/{columnId}/cards/{cardId}/comments/{commentId}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Comments"
				],
				"summary": "Get a comment",
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Column ID",
						"name": "columnId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Card ID",
						"name": "cardId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Comment ID",
						"name": "commentId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.Comment"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Comments"
				],
				"summary": "Edit a comment",
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Column ID",
						"name": "columnId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Card ID",
						"name": "cardId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Comment ID",
						"name": "commentId",
						"in": "path",
						"required": true
					},
					{
						"description": "Fields to change",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.UpdateCommentRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.Comment"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Comments"
				],
				"summary": "Delete a comment",
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Column ID",
						"name": "columnId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Card ID",
						"name": "cardId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Comment ID",
						"name": "commentId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		}
	},
	"definitions": {
		"handler.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string",
					"example": "column with id: 3 not found"
				},
				"kind": {
					"type": "string",
					"example": "not_found"
				}
			}
		},
		"handler.TokenResponse": {
			"type": "object",
			"properties": {
				"access_token": {
					"type": "string"
				}
			}
		},
		"handler.RegisterRequest": {
			"type": "object",
			"required": [
				"email",
				"name",
				"password"
			],
			"properties": {
				"name": {
					"type": "string",
					"maxLength": 50,
					"minLength": 2,
					"example": "Silvio"
				},
				"surname": {
					"type": "string",
					"maxLength": 50,
					"minLength": 2,
					"example": "Dante"
				},
				"email": {
					"type": "string",
					"example": "silvio@mail.com"
				},
				"password": {
					"type": "string",
					"example": "s3cret"
				}
			}
		},
		"handler.LoginRequest": {
			"type": "object",
			"required": [
				"email",
				"password"
			],
			"properties": {
				"email": {
					"type": "string",
					"example": "silvio@mail.com"
				},
				"password": {
					"type": "string",
					"example": "s3cret"
				}
			}
		},
		"handler.UpdateUserRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string",
					"maxLength": 50,
					"minLength": 2,
					"example": "Silvio"
				},
				"surname": {
					"type": "string",
					"maxLength": 50,
					"minLength": 2,
					"example": "Dante"
				},
				"email": {
					"type": "string",
					"example": "silvio@mail.com"
				}
			}
		},
		"handler.ColumnRequest": {
			"type": "object",
			"required": [
				"title"
			],
			"properties": {
				"title": {
					"type": "string",
					"maxLength": 256,
					"example": "To Do"
				}
			}
		},
		"handler.UpdateColumnRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string",
					"maxLength": 256,
					"minLength": 1,
					"example": "Done"
				}
			}
		},
		"handler.CreateCardRequest": {
			"type": "object",
			"required": [
				"title"
			],
			"properties": {
				"title": {
					"type": "string",
					"maxLength": 256,
					"example": "Buy groceries"
				},
				"description": {
					"type": "string",
					"maxLength": 500,
					"minLength": 1,
					"example": "1. Buy milk. 2. Buy bread"
				}
			}
		},
		"handler.UpdateCardRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string",
					"maxLength": 256,
					"minLength": 1,
					"example": "Buy groceries"
				},
				"description": {
					"type": "string",
					"maxLength": 500,
					"minLength": 1,
					"example": "1. Buy milk. 2. Buy bread"
				}
			}
		},
		"handler.CommentRequest": {
			"type": "object",
			"required": [
				"content"
			],
			"properties": {
				"content": {
					"type": "string",
					"maxLength": 500,
					"example": "Don't forget the oat milk"
				}
			}
		},
		"handler.UpdateCommentRequest": {
			"type": "object",
			"properties": {
				"content": {
					"type": "string",
					"maxLength": 500,
					"minLength": 1,
					"example": "Done"
				}
			}
		},
		"model.User": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"surname": {
					"type": "string"
				},
				"email": {
					"type": "string"
				}
			}
		},
		"model.Column": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"user_id": {
					"type": "integer"
				},
				"title": {
					"type": "string"
				}
			}
		},
		"model.Card": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"column_id": {
					"type": "integer"
				},
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				}
			}
		},
		"model.Comment": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"card_id": {
					"type": "integer"
				},
				"content": {
					"type": "string"
				}
			}
		},
		"pagination.Meta": {
			"type": "object",
			"properties": {
				"page": {
					"type": "integer"
				},
				"take": {
					"type": "integer"
				},
				"itemCount": {
					"type": "integer"
				},
				"pageCount": {
					"type": "integer"
				},
				"hasPreviousPage": {
					"type": "boolean"
				},
				"hasNextPage": {
					"type": "boolean"
				}
			}
		},
		"pagination.Page-model_Column": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/model.Column"
					}
				},
				"meta": {
					"$ref": "#/definitions/pagination.Meta"
				}
			}
		},
		"pagination.Page-model_Card": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/model.Card"
					}
				},
				"meta": {
					"$ref": "#/definitions/pagination.Meta"
				}
			}
		},
		"pagination.Page-model_Comment": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/model.Comment"
					}
				},
				"meta": {
					"$ref": "#/definitions/pagination.Meta"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and JWT token.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Taskboard API",
	Description:      "Users own columns, columns own cards, cards own comments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
