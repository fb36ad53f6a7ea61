package importer

// SampleCSV is a six-line excerpt of a real club calendar export (header
// plus five events), kept verbatim: tab-delimited and ragged in its
// trailing columns the way Outlook exports actually are. Used by tests and
// the CLI --sample flag.
const SampleCSV = `Subject	Start Date	Start Time	End Date	End Time	All day event	Reminder on/off	Reminder Date	Reminder Time	Meeting Organizer	Required Attendees	Optional Attendees	Meeting Resources	Billing Information	Categories	Description	Location	Mileage	Priority	Private	Sensitivity	Show time as
WoW Day #2 5:15 AM	6/20/2025	5:15 AM	6/20/2025	6:15 AM	FALSE	FALSE	6/20/2025	5:00 AM						Indian Hills CC	Women on Weights is a strength training program targeting women of all levels, get stronger together! Spaces are limited and you must be registered. *YOU MUST BE PRE-REGISTERED TO JOIN THIS PROGRAM This 8-week program includes: pre-and post-assessment • 60-minute Strength Training 2x's / week Led by IHCC personal trainer • Group Class of choice 2x's / week • Individualized macronutrient plan • Tracking card for accountability Including exercise progression, sleep, water intake and nutrition • Weekly cardio option workouts		Normal	FALSE	Normal	2
Cardio Sculpt 7:00 AM	6/20/2025	7:00 AM	6/20/2025	7:00 AM	FALSE	FALSE	6/20/2025	6:45 AM						Indian Hills CC	A great way to sweat and sculpt while building aerobic capacity. The exercises will keep you moving, sweating, and having fun!		Normal	FALSE	Normal	2
Jr. Tennis Member-Guest	6/20/2025	6:00 PM	6/20/2025	8:00 PM	FALSE	FALSE	6/20/2025	5:45 PM						Indian Hills CC	Invite a friend for tennis, pizza, drinks, and prizes! $25++ per person		Normal	FALSE	Normal	2
Father-Son Night of Fun!	6/22/2025	5:00 PM	6/22/2025	8:00 PM	FALSE	FALSE	6/22/2025	4:45 PM						Indian Hills CC	Dads and sons, join us for laser tag, zorb ball bowling, sumo suit wrestling, food, and fun! Dads - $45 and Sons - $30		Normal	FALSE	Normal	2
Circuit Training 8:30 AM	6/21/2025	8:30 AM	6/21/2025	9:30 AM	FALSE	FALSE	6/21/2025	8:15 AM						Indian Hills CC	A metabolism boosting workout utilizing multiple joint movements and full body exercises performed at a high intensity, formatted in a circuit style class. The exercises are constantly changing, forcing you to use your whole body as a unit.		Normal	FALSE	Normal	2`
