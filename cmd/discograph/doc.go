// Command discograph serves the music catalog web application and offers a
// few terminal views over the same database.
package main
