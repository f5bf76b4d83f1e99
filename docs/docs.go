// Package docs registers the Swagger document served at /swagger/*.
// Keep it in sync with the godoc annotations on the handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/bar-chart": {
            "get": {
                "produces": ["application/json"],
                "tags": ["charts"],
                "summary": "Price range histogram of a month",
                "parameters": [
                    {"type": "string", "description": "Month name", "name": "month", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.PriceRangeCount"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/combined-data": {
            "get": {
                "produces": ["application/json"],
                "tags": ["charts"],
                "summary": "Transactions, statistics and both charts of a month",
                "parameters": [
                    {"type": "string", "description": "Month name", "name": "month", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CombinedResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/initialize-database": {
            "get": {
                "description": "Loads the product feed when the store is empty; a populated store is left as is",
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Seed the transaction store",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/pie-chart": {
            "get": {
                "produces": ["application/json"],
                "tags": ["charts"],
                "summary": "Category breakdown of a month",
                "parameters": [
                    {"type": "string", "description": "Month name", "name": "month", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.CategoryCount"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/statistics": {
            "get": {
                "produces": ["application/json"],
                "tags": ["charts"],
                "summary": "Sales statistics of a month",
                "parameters": [
                    {"type": "string", "description": "Month name", "name": "month", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.StatisticsResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/transactions": {
            "get": {
                "description": "Case-insensitive search over title and description; a numeric search also matches the exact price",
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "List transactions of a month",
                "parameters": [
                    {"type": "string", "description": "Month name, e.g. March", "name": "month", "in": "query", "required": true},
                    {"type": "string", "description": "Search term", "name": "search", "in": "query"},
                    {"type": "integer", "default": 1, "description": "Page", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Records per page", "name": "perPage", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TransactionListResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CategoryCount": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "count": {"type": "integer"}
            }
        },
        "dto.CombinedResponse": {
            "type": "object",
            "properties": {
                "barChart": {"type": "array", "items": {"$ref": "#/definitions/dto.PriceRangeCount"}},
                "pieChart": {"type": "array", "items": {"$ref": "#/definitions/dto.CategoryCount"}},
                "statistics": {"$ref": "#/definitions/dto.StatisticsResponse"},
                "transactions": {"$ref": "#/definitions/dto.TransactionListResponse"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "dto.PriceRangeCount": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "range": {"type": "string"}
            }
        },
        "dto.StatisticsResponse": {
            "type": "object",
            "properties": {
                "totalNotSoldItems": {"type": "integer"},
                "totalSaleAmount": {"type": "number"},
                "totalSoldItems": {"type": "integer"}
            }
        },
        "dto.TransactionListResponse": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "transactions": {"type": "array", "items": {"$ref": "#/definitions/models.Transaction"}}
            }
        },
        "models.Transaction": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "dateOfSale": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "image": {"type": "string"},
                "price": {"type": "number"},
                "sold": {"type": "boolean"},
                "title": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3001",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Transaction Dashboard API",
	Description:      "Read-only queries over seeded sale transactions: listing, statistics, price histogram and category breakdown.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
