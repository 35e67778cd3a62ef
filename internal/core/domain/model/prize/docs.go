// Package prize holds the prize table and the grants users win from it.
//
// A Prize is an owner-configured reward (percent discount, flat discount or free
// delivery) with a draw weight and an optional provider scope. A Grant is one
// user's won copy of a prize definition; it is redeemed exactly once, against a
// whole checkout bundle rather than an individual order.
package prize
