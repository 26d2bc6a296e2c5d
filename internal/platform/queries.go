package platform

import "fmt"

// UserInfoQuery fetches the user record together with work-in-progress items,
// ordered ascending so the first wip item pins the home event.
const UserInfoQuery = `
{
    user {
        id
        login
        attrs
        campus
        labels {
            labelId
            labelName
        }
        createdAt
        updatedAt
        auditRatio
        totalUp
        totalUpBonus
        totalDown
    }

    wip: progress (
        where: {isDone: {_eq: false}, grade : {_is_null: true}}
        order_by: [{createdAt: asc}]
    ){
        id
        eventId
        createdAt
        updatedAt
        path
        group{
            members{
                userLogin
            }
        }
    }
}`

// ProjectQuery fetches completed results, xp transactions and audits, all
// scoped to the given event.
func ProjectQuery(eventID int) string {
	return fmt.Sprintf(`{
    completed: result (
        order_by: [{createdAt: desc}]
        where: { isLast: { _eq: true}, type : {_nin: ["tester", "admin_audit", "dedicated_auditors_for_event"]}}
    ) {
        objectId
        path
        createdAt
        group{
            members{
                userLogin
            }
        }
    }

    xp_view: transaction(
        order_by: [{ createdAt: desc }]
        where: { type: { _like: "xp" }, eventId: {_eq: %d}}
    ) {
        objectId
        path
        amount
        createdAt
    }

    audits: transaction(
        order_by: [{ createdAt: desc }]
        where: { type: { _in: ["up", "down"] }, eventId: {_eq: %d}}
    ) {
        attrs
        type
        objectId
        path
        amount
        createdAt
    }
}`, eventID, eventID)
}

// SkillQuery relies on the ordering contract (type desc, amount desc) with
// distinct_on to keep the highest amount per skill category.
const SkillQuery = `
{
    skills: transaction(
        order_by: [{ type: desc }, { amount: desc }]
        distinct_on: [type]
        where: { type: { _like: "skill_%" } }
    ) {
        objectId
        eventId
        type
        amount
        createdAt
    }
}`
