package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"listing",
			"check_in",
			"check_out",
			"number_of_adults",
			"total_price",
			"guest",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"listing": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"check_in": bson.M{
				"bsonType": "date",
			},

			"check_out": bson.M{
				"bsonType": "date",
			},

			"number_of_adults": bson.M{
				"bsonType": "int",
				"minimum":  1,
			},

			"number_of_children": bson.M{
				"bsonType": "int",
				"minimum":  0,
			},

			"total_price": bson.M{
				"bsonType": []string{"double", "int", "long", "decimal"},
				"minimum":  0,
			},

			"guest": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
