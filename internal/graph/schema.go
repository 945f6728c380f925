package graph

import graphql "github.com/graph-gophers/graphql-go"

// Schema is the full GraphQL surface. login lives under Query for historical
// client compatibility.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type User {
		id: ID!
		name: String!
		email: String!
		password: String
		status: String!
		posts: [Post!]!
	}

	type Post {
		id: ID!
		title: String!
		content: String!
		imageUrl: String!
		creator: User!
		createdAt: String!
		updatedAt: String!
	}

	type Todo {
		id: ID!
		name: String!
		status: Boolean!
	}

	type AuthData {
		token: String!
		userId: ID!
	}

	type PostsData {
		posts: [Post!]!
		total: Int!
	}

	input UserInputData {
		email: String!
		name: String!
		password: String!
	}

	input PostInputData {
		title: String!
		content: String!
		imageUrl: String
	}

	type Query {
		login(email: String!, password: String!): AuthData!
		getAllPosts(page: Int): PostsData!
		getPost(postId: ID): Post!
		user: User!
		todos: [Todo!]!
	}

	type Mutation {
		createUser(userInput: UserInputData!): User!
		createPost(postInput: PostInputData!): Post!
		updatePost(postId: ID!, postInput: PostInputData!): Post!
		deletePost(postId: ID!): Boolean!
		updateStatus(status: String!): User!
	}
`

// NewSchema parses the schema against a resolver. Struct fields back the
// object types; only the root operations are methods.
func NewSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, r, graphql.UseFieldResolvers())
}
