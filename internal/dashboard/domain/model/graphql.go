package model

// GraphQLRequest is the JSON body posted to the /v1/graphql endpoint.
type GraphQLRequest struct {
	Query string `json:"query"`
}

// GraphQLError is one entry of the GraphQL errors array.
type GraphQLError struct {
	Message string `json:"message"`
}

// AggregateMeta carries the count field of an aggregate bucket.
type AggregateMeta struct {
	Count int64 `json:"count"`
}

// AggregateBucket is one result group of an aggregate query. Without a
// groupBy clause the database returns exactly one bucket per class.
type AggregateBucket struct {
	Meta AggregateMeta `json:"meta"`
}

// GraphQLData is the data envelope of a query response. Get holds raw rows
// keyed by class name, Aggregate holds summary buckets keyed by class name.
// Whichever top-level field the query did not request stays nil.
type GraphQLData struct {
	Get       map[string][]CollectionData  `json:"Get,omitempty"`
	Aggregate map[string][]AggregateBucket `json:"Aggregate,omitempty"`
}

// GraphQLResponse is the full response envelope of the /v1/graphql endpoint.
type GraphQLResponse struct {
	Data   *GraphQLData   `json:"data,omitempty"`
	Errors []GraphQLError `json:"errors,omitempty"`
}
