// Package docs registers the OpenAPI description of the marketplace API with
// swag so echo-swagger can serve it under /swagger.
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
		"/couriers": {
			"get": {
				"summary": "List couriers in the actor's scope",
				"tags": [
					"couriers"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/http.Courier"
							}
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"422": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"in": "query",
						"name": "available",
						"type": "boolean"
					},
					{
						"in": "query",
						"name": "scope",
						"type": "string",
						"enum": [
							"manage"
						]
					}
				]
			},
			"post": {
				"summary": "Create a courier",
				"tags": [
					"couriers"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.Courier"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"422": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.NewCourier"
						}
					}
				]
			}
		},
		"/couriers/{id}": {
			"delete": {
				"summary": "Soft-delete a courier",
				"tags": [
					"couriers"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "OK"
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"422": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string",
						"format": "uuid"
					}
				]
			}
		},
		"/couriers/{id}/supervisors/{supervisorId}": {
			"put": {
				"summary": "Assign a supervisor",
				"tags": [
					"couriers"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "OK"
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"422": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"in": "path",
						"name": "supervisorId",
						"required": true,
						"type": "string",
						"format": "uuid"
					}
				]
			},
			"delete": {
				"summary": "Unassign a supervisor",
				"tags": [
					"couriers"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "OK"
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"422": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"in": "path",
						"name": "supervisorId",
						"required": true,
						"type": "string",
						"format": "uuid"
					}
				]
			}
		},
		"/couriers/{id}/availability": {
			"put": {
				"summary": "Set courier availability",
				"tags": [
					"couriers"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "OK"
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"422": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.Availability"
						}
					}
				]
			}
		},
		"/orders": {
			"get": {
				"summary": "List orders in the actor's scope",
				"tags": [
					"orders"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/http.Order"
							}
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"422": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"in": "query",
						"name": "view",
						"type": "string",
						"enum": [
							"active",
							"history",
							"pool"
						]
					}
				]
			},
			"post": {
				"summary": "Create a manual order",
				"tags": [
					"orders"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.Order"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"422": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.NewOrder"
						}
					}
				]
			}
		},
		"/orders/{id}": {
			"get": {
				"summary": "Get an order",
				"tags": [
					"orders"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.Order"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"422": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string",
						"format": "uuid"
					}
				]
			},
			"patch": {
				"summary": "Edit an order",
				"tags": [
					"orders"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.Order"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"422": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.OrderPatch"
						}
					}
				]
			},
			"delete": {
				"summary": "Delete an order",
				"tags": [
					"orders"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "OK"
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"422": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string",
						"format": "uuid"
					}
				]
			}
		},
		"/orders/{id}/assign": {
			"post": {
				"summary": "Assign a courier",
				"tags": [
					"orders"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.Order"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"422": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.Assignment"
						}
					}
				]
			}
		},
		"/orders/{id}/status": {
			"post": {
				"summary": "Change order status",
				"tags": [
					"orders"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.Order"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"422": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.StatusChange"
						}
					}
				]
			}
		},
		"/checkout/quote": {
			"post": {
				"summary": "Price a cart without writing",
				"tags": [
					"checkout"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.Quote"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"422": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.Cart"
						}
					}
				]
			}
		},
		"/checkout": {
			"post": {
				"summary": "Split a cart into per-provider orders",
				"tags": [
					"checkout"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.Bundle"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"422": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"503": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.Checkout"
						}
					}
				]
			}
		},
		"/prizes": {
			"get": {
				"summary": "List prizes",
				"tags": [
					"prizes"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/http.Prize"
							}
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"422": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				}
			},
			"post": {
				"summary": "Create a prize",
				"tags": [
					"prizes"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.Prize"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"422": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.NewPrize"
						}
					}
				]
			}
		},
		"/prizes/{id}": {
			"patch": {
				"summary": "Edit or (de)activate a prize",
				"tags": [
					"prizes"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.Prize"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"422": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.PrizePatch"
						}
					}
				]
			}
		},
		"/prizes/spin": {
			"post": {
				"summary": "Spin the prize wheel",
				"tags": [
					"prizes"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.Grant"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"503": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				}
			}
		},
		"/prizes/grants": {
			"get": {
				"summary": "List the caller's prize grants",
				"tags": [
					"prizes"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/http.Grant"
							}
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"422": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"in": "query",
						"name": "unredeemed",
						"type": "boolean"
					}
				]
			}
		},
		"/fleet/live": {
			"get": {
				"summary": "Snapshot of visible courier locations",
				"tags": [
					"fleet"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/fleet.SnapshotPayload"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				}
			}
		},
		"/fleet/pings": {
			"post": {
				"summary": "Report a courier location",
				"tags": [
					"fleet"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"202": {
						"description": "OK"
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/fleet.PingInput"
						}
					}
				]
			}
		},
		"/fleet/ws": {
			"get": {
				"summary": "Live fleet channel (WebSocket upgrade)",
				"tags": [
					"fleet"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"101": {
						"description": "OK"
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"in": "query",
						"name": "access_token",
						"type": "string"
					}
				]
			}
		}
	},
	"definitions": {
		"http.Error": {
			"type": "object",
			"properties": {
				"code": {
					"type": "integer"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"http.Contact": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"address": {
					"type": "string"
				}
			},
			"required": [
				"name",
				"phone",
				"address"
			]
		},
		"http.Item": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"quantity": {
					"type": "integer"
				},
				"unitPrice": {
					"type": "integer"
				},
				"providerId": {
					"type": "string",
					"format": "uuid"
				}
			},
			"required": [
				"name",
				"quantity",
				"unitPrice"
			]
		},
		"http.LineItem": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"quantity": {
					"type": "integer"
				},
				"unitPrice": {
					"type": "integer"
				},
				"total": {
					"type": "integer"
				},
				"providerId": {
					"type": "string",
					"format": "uuid"
				}
			}
		},
		"http.NewCourier": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"supervisorIds": {
					"type": "array",
					"items": {
						"type": "string",
						"format": "uuid"
					}
				}
			},
			"required": [
				"name",
				"phone"
			]
		},
		"http.Availability": {
			"type": "object",
			"properties": {
				"available": {
					"type": "boolean"
				}
			},
			"required": [
				"available"
			]
		},
		"http.Courier": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"name": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"available": {
					"type": "boolean"
				},
				"supervisorIds": {
					"type": "array",
					"items": {
						"type": "string",
						"format": "uuid"
					}
				}
			}
		},
		"http.NewOrder": {
			"type": "object",
			"properties": {
				"contact": {
					"$ref": "#/definitions/http.Contact"
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/http.Item"
					}
				},
				"deliveryFee": {
					"type": "integer"
				},
				"customerId": {
					"type": "string",
					"format": "uuid"
				},
				"providerId": {
					"type": "string",
					"format": "uuid"
				},
				"courierId": {
					"type": "string",
					"format": "uuid"
				},
				"notes": {
					"type": "string"
				}
			},
			"required": [
				"contact",
				"items"
			]
		},
		"http.OrderPatch": {
			"type": "object",
			"properties": {
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/http.Item"
					}
				},
				"contact": {
					"$ref": "#/definitions/http.Contact"
				},
				"courierId": {
					"type": "string",
					"format": "uuid"
				},
				"deliveryFee": {
					"type": "integer"
				},
				"notes": {
					"type": "string"
				}
			}
		},
		"http.Assignment": {
			"type": "object",
			"properties": {
				"courierId": {
					"type": "string",
					"format": "uuid"
				}
			},
			"required": [
				"courierId"
			]
		},
		"http.StatusChange": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"enum": [
						"pending",
						"assigned",
						"ready_for_pickup",
						"picked_up",
						"in_transit",
						"delivered",
						"cancelled"
					]
				}
			},
			"required": [
				"status"
			]
		},
		"http.Order": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"status": {
					"type": "string"
				},
				"group": {
					"type": "string"
				},
				"nextStatuses": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"customerId": {
					"type": "string",
					"format": "uuid"
				},
				"providerId": {
					"type": "string",
					"format": "uuid"
				},
				"bundleId": {
					"type": "string",
					"format": "uuid"
				},
				"grantId": {
					"type": "string",
					"format": "uuid"
				},
				"courierId": {
					"type": "string",
					"format": "uuid"
				},
				"supervisorId": {
					"type": "string",
					"format": "uuid"
				},
				"contact": {
					"$ref": "#/definitions/http.Contact"
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/http.LineItem"
					}
				},
				"subtotal": {
					"type": "integer"
				},
				"discount": {
					"type": "integer"
				},
				"deliveryFee": {
					"type": "integer"
				},
				"deliveryFeeWaived": {
					"type": "boolean"
				},
				"payable": {
					"type": "integer"
				},
				"origin": {
					"type": "string",
					"enum": [
						"manual",
						"customer-channel"
					]
				},
				"canReject": {
					"type": "boolean"
				},
				"isEdited": {
					"type": "boolean"
				},
				"notes": {
					"type": "string"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				},
				"updatedAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"http.CartLine": {
			"type": "object",
			"properties": {
				"providerId": {
					"type": "string",
					"format": "uuid"
				},
				"name": {
					"type": "string"
				},
				"quantity": {
					"type": "integer"
				},
				"unitPrice": {
					"type": "integer"
				}
			},
			"required": [
				"providerId",
				"name",
				"quantity",
				"unitPrice"
			]
		},
		"http.Cart": {
			"type": "object",
			"properties": {
				"lines": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/http.CartLine"
					}
				},
				"grantId": {
					"type": "string",
					"format": "uuid"
				}
			},
			"required": [
				"lines"
			]
		},
		"http.Checkout": {
			"type": "object",
			"properties": {
				"lines": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/http.CartLine"
					}
				},
				"grantId": {
					"type": "string",
					"format": "uuid"
				},
				"contact": {
					"$ref": "#/definitions/http.Contact"
				},
				"notes": {
					"type": "string"
				}
			},
			"required": [
				"lines",
				"contact"
			]
		},
		"http.Bundle": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"orders": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/http.Order"
					}
				},
				"grantId": {
					"type": "string",
					"format": "uuid"
				}
			}
		},
		"http.QuotedOrder": {
			"type": "object",
			"properties": {
				"providerId": {
					"type": "string",
					"format": "uuid"
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/http.LineItem"
					}
				},
				"subtotal": {
					"type": "integer"
				},
				"discount": {
					"type": "integer"
				},
				"deliveryFee": {
					"type": "integer"
				},
				"deliveryFeeWaived": {
					"type": "boolean"
				},
				"payable": {
					"type": "integer"
				}
			}
		},
		"http.Quote": {
			"type": "object",
			"properties": {
				"orders": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/http.QuotedOrder"
					}
				},
				"subtotal": {
					"type": "integer"
				},
				"discount": {
					"type": "integer"
				},
				"payable": {
					"type": "integer"
				},
				"grantApplicable": {
					"type": "boolean"
				}
			}
		},
		"http.NewPrize": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"type": {
					"type": "string",
					"enum": [
						"percent_discount",
						"flat_discount",
						"free_delivery"
					]
				},
				"value": {
					"type": "integer"
				},
				"providerId": {
					"type": "string",
					"format": "uuid"
				},
				"weight": {
					"type": "number"
				},
				"color": {
					"type": "string"
				}
			},
			"required": [
				"name",
				"type",
				"weight"
			]
		},
		"http.PrizePatch": {
			"type": "object",
			"properties": {
				"definition": {
					"type": "object",
					"properties": {
						"name": {
							"type": "string"
						},
						"type": {
							"type": "string"
						},
						"value": {
							"type": "integer"
						},
						"providerId": {
							"type": "string",
							"format": "uuid"
						}
					}
				},
				"weight": {
					"type": "number"
				},
				"color": {
					"type": "string"
				},
				"active": {
					"type": "boolean"
				}
			}
		},
		"http.Prize": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"name": {
					"type": "string"
				},
				"type": {
					"type": "string"
				},
				"value": {
					"type": "integer"
				},
				"providerId": {
					"type": "string",
					"format": "uuid"
				},
				"weight": {
					"type": "number"
				},
				"active": {
					"type": "boolean"
				},
				"color": {
					"type": "string"
				}
			}
		},
		"http.Grant": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"prizeId": {
					"type": "string",
					"format": "uuid"
				},
				"name": {
					"type": "string"
				},
				"type": {
					"type": "string"
				},
				"value": {
					"type": "integer"
				},
				"providerId": {
					"type": "string",
					"format": "uuid"
				},
				"grantedAt": {
					"type": "string",
					"format": "date-time"
				},
				"redeemedAt": {
					"type": "string",
					"format": "date-time"
				},
				"bundleId": {
					"type": "string",
					"format": "uuid"
				}
			}
		},
		"fleet.PingInput": {
			"type": "object",
			"properties": {
				"lat": {
					"type": "number"
				},
				"lng": {
					"type": "number"
				},
				"heading": {
					"type": "number"
				},
				"speed": {
					"type": "number"
				},
				"timestamp": {
					"type": "string",
					"format": "date-time"
				}
			},
			"required": [
				"lat",
				"lng",
				"timestamp"
			]
		},
		"fleet.Location": {
			"type": "object",
			"properties": {
				"courierId": {
					"type": "string",
					"format": "uuid"
				},
				"lat": {
					"type": "number"
				},
				"lng": {
					"type": "number"
				},
				"heading": {
					"type": "number"
				},
				"speed": {
					"type": "number"
				},
				"timestamp": {
					"type": "string",
					"format": "date-time"
				},
				"online": {
					"type": "boolean"
				}
			}
		},
		"fleet.SnapshotPayload": {
			"type": "object",
			"properties": {
				"couriers": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/fleet.Location"
					}
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Marketplace Fleet & Order API",
	Description:      "Order lifecycle, checkout bundles, prize wheel and live fleet tracking.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
