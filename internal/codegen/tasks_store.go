package codegen

import (
	"github.com/latchflow/latchc/internal/ir"
)

type redisGenerator struct{}

func (redisGenerator) EmitTask(node *ir.Node, funcName string) (string, error) {
	doc := []string{
		"Runs a Redis command via redis-py.",
		"GET operations are read-only; SET/DEL operations modify the store.",
	}
	body := []string{
		paramOrEnv("host", "host", "REDIS_HOST", "localhost"),
		intParamOrEnv("port", "port", "REDIS_PORT", "6379"),
		paramOrEnv("password", "password", "REDIS_PASSWORD", ""),
		`operation = str(params.get("operation", "get")).lower()`,
		`key = params.get("key", "")`,
		"",
		"client = redis.Redis(host=host, port=port, password=password or None, decode_responses=True)",
		"try:",
		"    if operation == \"set\":",
		"        client.set(key, json.dumps(params.get(\"value\")))",
		"        result = {\"key\": key, \"stored\": True}",
		"    elif operation == \"delete\":",
		"        result = {\"key\": key, \"deleted\": client.delete(key)}",
		"    else:",
		"        result = {\"key\": key, \"value\": client.get(key)}",
		"finally:",
		"    client.close()",
		"",
		"return {**input.input_data, \"redis_result\": result}",
	}
	return emitTask(node, funcName, doc, body), nil
}

type mongoGenerator struct{}

func (mongoGenerator) EmitTask(node *ir.Node, funcName string) (string, error) {
	doc := []string{
		"Runs a MongoDB operation via pymongo.",
		"find operations are read-only; insert/update/delete modify the collection.",
	}
	body := []string{
		paramOrEnv("host", "host", "MONGODB_HOST", "localhost"),
		intParamOrEnv("port", "port", "MONGODB_PORT", "27017"),
		paramOrEnv("user", "user", "MONGODB_USER", ""),
		paramOrEnv("password", "password", "MONGODB_PASSWORD", ""),
		paramOrEnv("database", "database", "MONGODB_DATABASE", "test"),
		`collection = params.get("collection", "")`,
		`operation = str(params.get("operation", "find")).lower()`,
		`document = params.get("document") or {}`,
		`query = params.get("query") or {}`,
		"",
		"if user:",
		`    uri = f"mongodb://{user}:{password}@{host}:{port}/"`,
		"else:",
		`    uri = f"mongodb://{host}:{port}/"`,
		"client = pymongo.MongoClient(uri)",
		"try:",
		"    coll = client[database][collection]",
		"    if operation == \"insert\":",
		"        inserted = coll.insert_one(document)",
		"        result = {\"inserted_id\": str(inserted.inserted_id)}",
		"    elif operation == \"update\":",
		"        updated = coll.update_many(query, {\"$set\": document})",
		"        result = {\"matched\": updated.matched_count, \"modified\": updated.modified_count}",
		"    elif operation == \"delete\":",
		"        deleted = coll.delete_many(query)",
		"        result = {\"deleted\": deleted.deleted_count}",
		"    else:",
		"        result = [{**doc, \"_id\": str(doc.get(\"_id\"))} for doc in coll.find(query)]",
		"finally:",
		"    client.close()",
		"",
		"return {**input.input_data, \"mongo_result\": result}",
	}
	return emitTask(node, funcName, doc, body), nil
}
